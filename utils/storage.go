package utils

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// R2Client wraps the S3 client + bucket name. Reel videos, thumbnails and
// review clips are served from the R2 public domain.
type R2Client struct {
	S3     *s3.Client
	Bucket string
}

// NewR2Client builds the client from R2_* env vars.
func NewR2Client(ctx context.Context) (*R2Client, error) {
	bucket := os.Getenv("R2_BUCKET")
	accessKey := os.Getenv("R2_ACCESS_KEY_ID")
	secretKey := os.Getenv("R2_SECRET_ACCESS_KEY")
	endpoint := os.Getenv("R2_ENDPOINT") // https://<account-id>.r2.cloudflarestorage.com

	if bucket == "" || accessKey == "" || secretKey == "" || endpoint == "" {
		return nil, fmt.Errorf("missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("r2 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true // required for R2
	})

	return &R2Client{S3: client, Bucket: bucket}, nil
}

// MediaUpload describes a stored object.
type MediaUpload struct {
	PublicURL  string `json:"publicUrl"`
	ObjectName string `json:"objectName"`
	MimeType   string `json:"mimeType"`
	SizeBytes  int64  `json:"sizeBytes"`
}

var allowedMediaExt = map[string]bool{
	".mp4": true, ".webm": true, ".mov": true,
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// UploadMediaToR2 stores a video or thumbnail under prefix/<owner-id>/ and
// returns its public URL. Allowed types: mp4, webm, mov, jpg, jpeg, png,
// webp.
func UploadMediaToR2(
	ctx context.Context,
	r2 *R2Client,
	prefix string,
	ownerID string,
	fileHeader *multipart.FileHeader,
) (*MediaUpload, error) {

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedMediaExt[ext] {
		return nil, fmt.Errorf("file type not allowed (allowed: mp4, webm, mov, jpg, jpeg, png, webp)")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ct := fileHeader.Header.Get("Content-Type")
	if ct == "" {
		ct = mime.TypeByExtension(ext)
	}
	if ct == "" {
		ct = "application/octet-stream"
	}

	objectName := fmt.Sprintf(
		"%s/%s/%d-%s%s",
		prefix, ownerID, time.Now().UTC().Unix(), uuid.New().String(), ext,
	)

	_, err = r2.S3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(r2.Bucket),
		Key:          aws.String(objectName),
		Body:         file,
		ContentType:  aws.String(ct),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", fileHeader.Filename, err)
	}

	return &MediaUpload{
		PublicURL:  publicURL(objectName),
		ObjectName: objectName,
		MimeType:   ct,
		SizeBytes:  fileHeader.Size,
	}, nil
}

// DeleteR2Objects removes stored objects, returning the first failure but
// attempting every delete.
func DeleteR2Objects(ctx context.Context, r2 *R2Client, objectNames []string) error {
	var firstErr error
	for _, obj := range objectNames {
		if obj == "" {
			continue
		}
		_, err := r2.S3.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(r2.Bucket),
			Key:    aws.String(obj),
		})
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("delete %s: %w", obj, err)
		}
	}
	return firstErr
}

// publicURL builds the public URL for a stored object. Set R2_PUBLIC_DOMAIN
// to your custom domain or r2.dev URL, e.g. "https://files.yourdomain.com"
// or "https://pub-xxx.r2.dev"
func publicURL(objectName string) string {
	bucket := os.Getenv("R2_BUCKET")
	domain := strings.TrimRight(os.Getenv("R2_PUBLIC_DOMAIN"), "/")
	return fmt.Sprintf("%s/%s/%s", domain, bucket, objectName)
}
