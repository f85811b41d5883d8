package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"SaveNServe-Backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	AllowImage = []string{".jpg", ".jpeg", ".png", ".webp"}

	ErrFileTypeNotAllowed = fmt.Errorf("file type not allowed")
)

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedExt ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	region := utils.GetConfig("AWS_S3_REGION")
	creds := credentials.NewStaticCredentialsProvider(
		utils.GetConfig("AWS_ACCESS_KEY"),
		utils.GetConfig("AWS_SECRET_KEY"),
		"",
	)

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to load AWS config: %v", err))
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
		region: region,
	}
}

func checkExtension(fileName string, allowedExt []string) error {
	if len(allowedExt) == 0 {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range allowedExt {
		if ext == allowed {
			return nil
		}
	}
	return ErrFileTypeNotAllowed
}

func (s *awsS3) putObject(objectKey string, file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	_, err = s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *awsS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedExt ...string) (string, error) {
	if err := checkExtension(file.Filename, allowedExt); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectKey := fmt.Sprintf("%s/%s%s", dir, fileName, ext)

	if err := s.putObject(objectKey, file); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (s *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	if err := checkExtension(file.Filename, allowedExt); err != nil {
		return "", err
	}

	if err := s.putObject(objectKey, file); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (s *awsS3) DeleteFile(objectKey string) error {
	_, err := s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (s *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey)
}

func (s *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
