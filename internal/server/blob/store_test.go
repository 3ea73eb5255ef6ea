package blob

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/clientportal/internal/server/config"
)

func newStore() *Store {
	return NewStore(&sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "portal-files",
	})
}

func Test_getClient_SuccessAndError(t *testing.T) {
	store := newStore()

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		return aws.Config{}, nil
	}

	var capturedBaseEndpoint string
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint == nil {
			t.Fatalf("BaseEndpoint not set")
		}
		capturedBaseEndpoint = *opts.BaseEndpoint
		return &s3.Client{}
	}

	c, err := store.getClient()
	if err != nil {
		t.Fatalf("getClient err: %v", err)
	}
	if c == nil {
		t.Fatalf("nil client")
	}
	if capturedBaseEndpoint != "http://127.0.0.1:9000" {
		t.Fatalf("BaseEndpoint mismatch: %q", capturedBaseEndpoint)
	}

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	if _, err := store.getClient(); err == nil || err.Error() != "load-fail" {
		t.Fatalf("expected load-fail, got %v", err)
	}
}

func TestPut_SuccessAndError(t *testing.T) {
	store := newStore()

	origLoad, origNewS3, origPut := loadDefaultAWSConfig, newS3ClientFromConfig, putObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		putObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}

	var gotKey, gotBucket, gotContentType string
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		gotKey = *in.Key
		gotBucket = *in.Bucket
		if in.ContentType != nil {
			gotContentType = *in.ContentType
		}
		return &s3.PutObjectOutput{}, nil
	}

	if err := store.Put(context.Background(), "k1", []byte("data"), "text/plain"); err != nil {
		t.Fatalf("Put err: %v", err)
	}
	if gotKey != "k1" || gotBucket != "portal-files" || gotContentType != "text/plain" {
		t.Fatalf("unexpected input: key=%q bucket=%q ct=%q", gotKey, gotBucket, gotContentType)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("put-fail")
	}

	err := store.Put(context.Background(), "k1", []byte("data"), "")
	if err == nil || !strings.Contains(err.Error(), "put-fail") {
		t.Fatalf("expected put-fail, got %v", err)
	}
}

func TestPresignGet_SuccessAndError(t *testing.T) {
	store := newStore()

	origLoad, origNewS3, origNewPre, origPresign := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignGetObject = origPresign
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if *in.Key != "k2" {
			t.Fatalf("unexpected key %q", *in.Key)
		}
		return &v4.PresignedHTTPRequest{URL: "http://signed/k2"}, nil
	}

	url, err := store.PresignGet(context.Background(), "k2")
	if err != nil {
		t.Fatalf("PresignGet err: %v", err)
	}
	if url != "http://signed/k2" {
		t.Fatalf("unexpected url %q", url)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	}

	if _, err := store.PresignGet(context.Background(), "k2"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRandomStorageKey(t *testing.T) {
	k1 := RandomStorageKey("p-1")
	k2 := RandomStorageKey("p-1")

	if !strings.HasPrefix(k1, "participants/p-1/") {
		t.Fatalf("unexpected key prefix: %q", k1)
	}
	if k1 == k2 {
		t.Fatalf("expected unique keys, got %q twice", k1)
	}
}
