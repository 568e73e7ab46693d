package echoapi

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/darasa-app/darasa/core"
)

func registerUploadAPI(g *echo.Group) {
	g.POST("/uploads", uploadFiles)
}

// uploadFiles accepts a multipart form under the "files" field and turns each
// PDF/image file into a ReferenceFile served from the media directory.
func uploadFiles(ctx echo.Context) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return errors.Wrap(err, "reading multipart form")
	}

	files := form.File["files"]
	refs := make([]core.ReferenceFile, 0, len(files))
	for _, fh := range files {
		ref, err := core.NewReferenceFile(fh.Filename, fh.Header.Get(echo.HeaderContentType), fh.Size, "")
		if err != nil {
			return err
		}

		dst := filepath.Join(core.Conf.MediaRoot, ref.ID+filepath.Ext(fh.Filename))
		if err := saveUpload(fh, dst); err != nil {
			return errors.Wrap(err, "saving upload")
		}
		ref.URL = path.Join(core.Conf.MediaURL, filepath.Base(dst))
		refs = append(refs, ref)
	}
	return ctx.JSON(http.StatusCreated, refs)
}

func saveUpload(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
