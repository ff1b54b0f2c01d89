package stratz

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

var (
	// ErrRequest means STRATZ could not be reached or refused the request.
	ErrRequest = errors.New("stratz request failed")
	// ErrDecode means the response body did not have the expected shape.
	ErrDecode = errors.New("stratz response could not be decoded")
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "STRATZ_API"
)

// MatchesQuery fetches the latest matches of a guild, newest first.
const MatchesQuery = `query MatchesQuery($guildId: Int!, $take: Int!) {
  guild(id: $guildId) {
    id
    name
    logo
    matches(take: $take) {
      id
      lobbyType
      gameMode
      durationSeconds
      endDateTime
      players {
        isRadiant
        isVictory
        imp
        kills
        deaths
        assists
        hero {
          id
        }
        steamAccount {
          name
        }
      }
    }
  }
}`

type request struct {
	Query     string    `json:"query"`
	Variables variables `json:"variables"`
}

type variables struct {
	GuildID int64 `json:"guildId"`
	Take    int   `json:"take"`
}

// Service talks to the STRATZ GraphQL API.
type Service struct {
	apiURL     string
	jwt        string
	httpClient *http.Client
}

// NewService creates a STRATZ client for the given endpoint and API token.
func NewService(apiURL, jwt string) *Service {
	return &Service{
		apiURL: apiURL,
		jwt:    jwt,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// FetchMatches fetches the latest take matches of the guild having guildID.
// Errors wrap ErrRequest or ErrDecode.
func (s *Service) FetchMatches(ctx context.Context, guildID int64, take int) (*Response, error) {
	log.Debugf("Fetching %d matches of guild %d", take, guildID)

	body, err := json.Marshal(request{
		Query:     MatchesQuery,
		Variables: variables{GuildID: guildID, Take: take},
	})
	if err != nil {
		return nil, xerrors.Errorf("encode query (%v): %w", err, ErrRequest)
	}

	endpoint, err := s.endpoint()
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, ErrRequest)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, xerrors.Errorf("create request (%v): %w", err, ErrRequest)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	log.Trace("Posting request...")
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, ErrRequest)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, xerrors.Errorf("status %d (%s): %w", resp.StatusCode, bytes.TrimSpace(snippet), ErrRequest)
	}

	log.Trace("Parsing response...")
	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, xerrors.Errorf("%v: %w", err, ErrDecode)
	}
	log.Trace("Successfully parsed response!")

	return &out, nil
}

// endpoint returns the API URL with the token attached as the jwt parameter.
func (s *Service) endpoint() (string, error) {
	u, err := url.Parse(s.apiURL)
	if err != nil {
		return "", xerrors.Errorf("parse api url: %w", err)
	}
	q := u.Query()
	q.Set("jwt", s.jwt)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
