package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const maxImageDimension = 1600

// DecodeUploadedImage lee un multipart file y decodifica jpeg/png/webp.
func DecodeUploadedImage(fileHeader *multipart.FileHeader) (image.Image, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir la imagen: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la imagen: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("archivo vacío")
	}

	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var img image.Image
	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("formato no soportado: %s", ct)
	}
	return img, err
}

// ConvertToWebP reescala (si hace falta) y re-encodea a webp con calidad 85.
func ConvertToWebP(img image.Image) ([]byte, error) {
	b := img.Bounds()
	if b.Dx() > maxImageDimension || b.Dy() > maxImageDimension {
		img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sanitizeFilename(filename string) string {
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	base := strings.TrimSuffix(sanitizeFilename(originalFilename), filepath.Ext(originalFilename))
	return fmt.Sprintf("%s/%s-%s-%s.webp", folder, timestamp, uuid.New().String(), base)
}

// SaveWebPImage guarda los bytes bajo uploadDir y devuelve la ruta pública.
func SaveWebPImage(uploadDir, publicBase, relPath string, data []byte) (string, error) {
	full := filepath.Join(uploadDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return publicBase + "/" + relPath, nil
}
