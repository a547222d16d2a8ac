// Package media uploads attachments and hands back a durable URL.
package media

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/model"
	"go.uber.org/zap"
)

// Uploader stores a local file and returns its URL.
type Uploader interface {
	Upload(ctx context.Context, localPath string, kind model.MediaKind) (string, error)
}

// DirUploader copies files into a directory and returns file:// URLs.
type DirUploader struct {
	dir    string
	logger *zap.Logger
}

func NewDirUploader(dir string, logger *zap.Logger) (*DirUploader, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &DirUploader{dir: dir, logger: logger}, nil
}

// Upload checks that the content matches kind and copies it under a fresh
// name that keeps the detected extension.
func (u *DirUploader) Upload(ctx context.Context, localPath string, kind model.MediaKind) (string, error) {
	const op = "UploadMedia"
	if !kind.Valid() {
		return "", errs.Validationf(op, "unknown media kind %q", kind)
	}
	mt, err := mimetype.DetectFile(localPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errs.Validationf(op, "no such file %s", localPath)
		}
		return "", errs.TransientIO(op, err)
	}
	if !matches(mt, kind) {
		return "", errs.Validationf(op, "%s is %s, not %s", filepath.Base(localPath), mt.String(), kind)
	}

	src, err := os.Open(localPath)
	if err != nil {
		return "", errs.TransientIO(op, err)
	}
	defer src.Close()

	name := uuid.NewString() + mt.Extension()
	dst := filepath.Join(u.dir, name)
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return "", errs.TransientIO(op, err)
	}
	if _, err := io.Copy(out, readerWithContext(ctx, src)); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", errs.TransientIO(op, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", errs.TransientIO(op, err)
	}

	abs, err := filepath.Abs(dst)
	if err != nil {
		return "", errs.TransientIO(op, err)
	}
	u.logger.Debug("media stored", zap.String("file", name), zap.String("mime", mt.String()))
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

func matches(mt *mimetype.MIME, kind model.MediaKind) bool {
	for m := mt; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), string(kind)+"/") {
			return true
		}
	}
	return false
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
