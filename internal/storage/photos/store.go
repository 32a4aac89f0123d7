package photos

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/config"
	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
)

const maxWidth = 1600

var ErrInvalidImage = httperr.ErrBusiness("invalid_image")

// Store normaliza e persiste fotos de documentação. Com bucket
// configurado: decodifica o data URL, reduz para no máximo 1600px de
// largura, re-encoda em webp e sobe para o S3. Sem bucket, o data
// URL original é armazenado inline no banco.
type Store struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
}

func New(cfg *config.Config) *Store {
	if !cfg.S3Enabled() {
		return &Store{}
	}

	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := cfg.S3Endpoint
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	} else {
		baseURL = strings.TrimSuffix(baseURL, "/") + "/" + cfg.S3Bucket
	}

	return &Store{
		client:  client,
		bucket:  cfg.S3Bucket,
		region:  cfg.S3Region,
		baseURL: baseURL,
	}
}

// Save persiste a imagem e devolve a URL final.
func (s *Store) Save(ctx context.Context, photoID, dataURL string) (string, error) {
	if s.client == nil {
		// Sem storage externo: a data URL vai direto para o banco.
		if _, err := decodeDataURL(dataURL); err != nil {
			return "", err
		}
		return dataURL, nil
	}

	raw, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", ErrInvalidImage
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("photos/%s.webp", photoID)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return s.baseURL + "/" + key, nil
}

// decodeDataURL valida e extrai os bytes de um "data:image/...;base64,...".
func decodeDataURL(dataURL string) ([]byte, error) {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return nil, ErrInvalidImage
	}

	idx := strings.Index(dataURL, ";base64,")
	if idx < 0 {
		return nil, ErrInvalidImage
	}

	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		return nil, ErrInvalidImage
	}
	if len(raw) == 0 {
		return nil, ErrInvalidImage
	}
	return raw, nil
}

func downscale(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxWidth {
		return img
	}

	h := b.Dy() * maxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
