package archive

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client putObjectAPI
	bucket string
}

func NewS3Uploader(cfg S3Config) *S3Uploader {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: credentialsProvider(cfg),
	}

	// endpoint próprio (minio, localstack) exige path-style
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Uploader{
		client: s3.New(opts),
		bucket: cfg.Bucket,
	}
}

// HasStaticCredentials indica se as duas chaves foram informadas.
func (c S3Config) HasStaticCredentials() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

// Sem chaves as requisições vão sem assinatura (bucket com escrita anônima).
func credentialsProvider(cfg S3Config) aws.CredentialsProvider {
	if !cfg.HasStaticCredentials() {
		return aws.AnonymousCredentials{}
	}
	return credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
}

func (u *S3Uploader) Upload(ctx context.Context, job Job) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(job.Key),
		Body:          bytes.NewReader(job.Body),
		ContentType:   aws.String(job.ContentType),
		ContentLength: aws.Int64(int64(len(job.Body))),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", job.Key, err)
	}
	return nil
}

var _ Uploader = (*S3Uploader)(nil)
