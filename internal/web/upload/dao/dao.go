// Package dao is the data access object for image uploads.
package dao

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	gutils "github.com/Laisky/go-utils/v6"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/bson"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
)

const colUploads = "uploads"

// Upload dao type
type Upload struct {
	logger logSDK.Logger
	db     mongo.DB
	s3     *minio.Client
}

// New create new dao
func New(logger logSDK.Logger, db mongo.DB, s3 *minio.Client) *Upload {
	return &Upload{
		logger: logger,
		db:     db,
		s3:     s3,
	}
}

// GetUploadsCol get uploads collection
func (d *Upload) GetUploadsCol() *mongoLib.Collection {
	return d.db.GetCol(colUploads)
}

// PutImage stores the image bytes in object storage under a generated key
// and returns the public URL. An audit record is written alongside; its
// failure is logged but never fails the upload.
func (d *Upload) PutImage(ctx context.Context,
	cnt []byte, filename, contentType string) (url string, err error) {
	objkey := fmt.Sprintf("%s/%s%s",
		strings.TrimSuffix(gconfig.S.GetString("settings.s3.prefix"), "/"),
		uuid.NewString(),
		strings.ToLower(path.Ext(filename)),
	)
	bucket := gconfig.S.GetString("settings.s3.bucket")

	var pool errgroup.Group

	pool.Go(func() (err error) {
		_, err = d.s3.PutObject(ctx,
			bucket,
			objkey,
			bytes.NewReader(cnt),
			int64(len(cnt)),
			minio.PutObjectOptions{
				ContentType: contentType,
			},
		)
		if err != nil {
			return errors.Wrap(err, "put object")
		}

		return nil
	})

	// save audit record
	pool.Go(func() (err error) {
		_, err = d.GetUploadsCol().
			InsertOne(ctx, bson.M{
				"created_at":   gutils.Clock.GetUTCNow(),
				"object_key":   objkey,
				"file_name":    filename,
				"file_size":    len(cnt),
				"content_type": contentType,
			})
		if err != nil {
			d.logger.Error("save upload record", zap.Error(err))
		}

		return nil // ignore error
	})

	if err = pool.Wait(); err != nil {
		return "", errors.Wrap(err, "upload image")
	}

	url = fmt.Sprintf("%s/%s/%s",
		strings.TrimSuffix(gconfig.S.GetString("settings.s3.public_url"), "/"),
		bucket,
		objkey,
	)

	d.logger.Info("uploaded image", zap.String("objkey", objkey))
	return url, nil
}
