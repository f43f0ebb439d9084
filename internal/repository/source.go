package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var ErrSourceNotFound = errors.New("ledger source not found")

const gcsScheme = "gs://"

// Source is where the ledger CSV lives.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Store(ctx context.Context, r io.Reader) error
	Location() string
}

// NewSource picks a GCSSource for gs:// locations and a FileSource otherwise.
func NewSource(ctx context.Context, location, credentialsFile string) (Source, error) {
	if strings.HasPrefix(location, gcsScheme) {
		return NewGCSSource(ctx, location, credentialsFile)
	}
	return NewFileSource(location), nil
}

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Location() string {
	return s.path
}

func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file: %w", err)
	}
	return f, nil
}

// Store replaces the file through a temporary sibling and a rename.
func (s *FileSource) Store(_ context.Context, r io.Reader) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}

// GCSSource keeps the ledger in a Cloud Storage object.
type GCSSource struct {
	client *storage.Client
	bucket string
	object string
}

// NewGCSSource uses Application Default Credentials unless credentialsFile is set.
func NewGCSSource(ctx context.Context, uri, credentialsFile string) (*GCSSource, error) {
	bucket, object, err := ParseGCSURI(uri)
	if err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSSource{client: client, bucket: bucket, object: object}, nil
}

// ParseGCSURI splits gs://bucket/path/to/object.
func ParseGCSURI(uri string) (bucket, object string, err error) {
	if !strings.HasPrefix(uri, gcsScheme) {
		return "", "", fmt.Errorf("invalid GCS URI: %s", uri)
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, gcsScheme), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid GCS URI: %s", uri)
	}
	return parts[0], parts[1], nil
}

func (s *GCSSource) Location() string {
	return gcsScheme + s.bucket + "/" + s.object
}

func (s *GCSSource) Open(ctx context.Context) (io.ReadCloser, error) {
	r, err := s.client.Bucket(s.bucket).Object(s.object).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Location())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open GCS object reader: %w", err)
	}
	return r, nil
}

func (s *GCSSource) Store(ctx context.Context, r io.Reader) error {
	w := s.client.Bucket(s.bucket).Object(s.object).NewWriter(ctx)
	w.ContentType = "text/csv"

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to copy ledger to GCS writer: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize GCS upload: %w", err)
	}
	return nil
}

func (s *GCSSource) Close() error {
	return s.client.Close()
}
