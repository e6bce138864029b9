package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)
	maxEdge       = 512
	webpQuality   = 82
)

// ReadImageUpload validates and buffers a multipart image upload.
func ReadImageUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	if fileHeader.Size > maxUploadSize {
		return nil, fmt.Errorf("image exceeds %dMB limit", maxUploadSize/(1024*1024))
	}
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeProfileWebP decodes a jpeg/png payload, downscales the long edge to
// maxEdge and re-encodes as webp. Returns the encoded bytes.
func EncodeProfileWebP(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	img = downscale(img, maxEdge)

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return out.Bytes(), nil
}

func downscale(img image.Image, edge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= edge && h <= edge {
		return img
	}
	if w >= h {
		h = h * edge / w
		w = edge
	} else {
		w = w * edge / h
		h = edge
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
