package archive

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"golang.org/x/xerrors"
	"google.golang.org/api/option"
)

// NewFirestoreClient opens Firestore through a Firebase app. Application
// default credentials are used when credentialsJSON is empty.
func NewFirestoreClient(ctx context.Context, projectID, credentialsJSON string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, xerrors.Errorf("init firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, xerrors.Errorf("init firestore: %w", err)
	}
	return client, nil
}
