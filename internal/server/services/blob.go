package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/FBurak/Restaurant-Web/internal/common"
	pb "github.com/FBurak/Restaurant-Web/internal/proto"
	sc "github.com/FBurak/Restaurant-Web/internal/server/config"
	"github.com/FBurak/Restaurant-Web/internal/server/models"
	"github.com/FBurak/Restaurant-Web/internal/server/repositories/repomanager"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	headObject = func(c *s3.Client, ctx context.Context, in *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return c.HeadObject(ctx, in)
	}

	nowFunc = time.Now
)

// PresignedUpload is a storage slot the client may PUT to until ExpiresAt.
type PresignedUpload struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// BlobService brokers uploads: it hands out presigned PUT URLs for object
// keys it chooses and turns finished uploads into public retrieval URLs.
type BlobService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewBlobService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *BlobService {
	return &BlobService{db: db, repomanager: m, config: cfg}
}

// StorageKey builds the object key for an upload of fileName.
func StorageKey(tenant, kind, fileName string, at time.Time) string {
	return fmt.Sprintf("uploads/%s/%s_%d_%s", tenant, kind, at.UnixMilli(), sanitizeFileName(fileName))
}

func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}

func validKind(kind string) bool {
	return kind == pb.UploadKindHeader || kind == pb.UploadKindGallery
}

func (s *BlobService) getS3Client() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// RequestUpload records a pending upload and presigns a PUT for it.
func (s *BlobService) RequestUpload(ctx context.Context, userID, tenant, kind, fileName, contentType string) (*PresignedUpload, error) {
	if err := ValidateTenant(tenant); err != nil {
		return nil, err
	}
	if !validKind(kind) {
		return nil, fmt.Errorf("%w: upload kind %q", common.ErrorInvalidArgument, kind)
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(fileName))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	client, err := s.getS3Client()
	if err != nil {
		return nil, err
	}

	now := nowFunc()
	key := StorageKey(tenant, kind, fileName, now)
	bucket := s.config.S3Bucket

	if err := s.repomanager.Uploads(s.db).Create(ctx, &models.Upload{
		Key:          key,
		RestaurantID: tenant,
		Kind:         kind,
		ContentType:  contentType,
		Status:       models.UploadStatusPending,
		CreatedBy:    userID,
	}); err != nil {
		return nil, err
	}

	req, err := presignPutObject(newS3PresignClient(client), ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(s.config.UploadURLValidityDuration))
	if err != nil {
		return nil, err
	}

	return &PresignedUpload{Key: key, URL: req.URL, ExpiresAt: now.Add(s.config.UploadURLValidityDuration)}, nil
}

// FinalizeUpload confirms the object behind key exists and returns its
// public URL. Finalizing a completed upload again returns the same URL.
func (s *BlobService) FinalizeUpload(ctx context.Context, tenant, key string) (string, error) {
	if err := ValidateTenant(tenant); err != nil {
		return "", err
	}

	repo := s.repomanager.Uploads(s.db)
	u, err := repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if u.RestaurantID != tenant {
		return "", common.ErrorNotFound
	}
	if u.Status == models.UploadStatusCompleted {
		return s.PublicURL(key), nil
	}

	client, err := s.getS3Client()
	if err != nil {
		return "", err
	}
	bucket := s.config.S3Bucket
	if _, err := headObject(client, ctx, &s3.HeadObjectInput{Bucket: &bucket, Key: &key}); err != nil {
		return "", errors.Join(common.ErrUploadMissing, err)
	}

	if err := repo.MarkCompleted(ctx, key); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

// PublicURL is the stable retrieval URL of key.
func (s *BlobService) PublicURL(key string) string {
	segs := strings.Split(key, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(s.config.PublicBaseURL, "/") + "/" + url.PathEscape(s.config.S3Bucket) + "/" + strings.Join(segs, "/")
}
