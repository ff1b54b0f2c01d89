package resend

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/guildwatch/announcer/pkg/notification"
	resend "github.com/resend/resend-go/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// ErrMail means Resend did not accept the mail.
var ErrMail = errors.New("resend mail failed")

// Service mirrors announcements to a fixed list of e-mail recipients.
type Service struct {
	resendClient *resend.Client
	from         string
	to           []string
}

// NewService creates a mirror sending from the given address.
func NewService(apiKey, from string, to []string) *Service {
	return &Service{
		resendClient: resend.NewClient(apiKey),
		from:         from,
		to:           to,
	}
}

// WithBaseURL points the client at a different API host.
func (s *Service) WithBaseURL(baseURL *url.URL) *Service {
	s.resendClient.BaseURL = baseURL
	return s
}

func (s *Service) Name() string {
	return "resend"
}

func (s *Service) Send(ctx context.Context, n notification.Notification) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      s.to,
		Subject: n.Title,
		Html:    RenderEmail(n),
	}

	sent, err := s.resendClient.Emails.SendWithContext(ctx, params)
	if err != nil {
		return xerrors.Errorf("match %d (%v): %w", n.MatchID, err, ErrMail)
	}
	log.Tracef("Mail %s sent for match %d", sent.Id, n.MatchID)
	return nil
}

// RenderEmail renders n as a standalone HTML document.
func RenderEmail(n notification.Notification) string {
	var sections strings.Builder
	for _, f := range n.Fields {
		fmt.Fprintf(&sections, "        <h3>%s</h3>\n        <pre>%s</pre>\n",
			html.EscapeString(f.Name), html.EscapeString(f.Value))
	}

	author := html.EscapeString(n.Author.Name)
	if n.Author.URL != "" {
		author = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(n.Author.URL), author)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: Arial, sans-serif;
            background-color: #f4f4f4;
            margin: 0;
            padding: 20px;
        }
        .container {
            background-color: #ffffff;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            border-left: 6px solid #%06X;
            box-shadow: 0 0 10px rgba(0,0,0,0.1);
        }
        pre {
            font-family: inherit;
            white-space: pre-wrap;
        }
    </style>
</head>
<body>
    <div class="container">
        <p>%s</p>
        <h2>%s</h2>
        <p><a href="%s">%s</a></p>
%s    </div>
</body>
</html>`,
		n.Color,
		author,
		html.EscapeString(n.Title),
		html.EscapeString(n.Content), html.EscapeString(n.Content),
		sections.String())
}
