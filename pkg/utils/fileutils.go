package utils

import (
	"crypto/md5"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/payrawsa/pdf-to-text/pkg/constants"
	"github.com/payrawsa/pdf-to-text/pkg/types"
)

// NormalizePath standardizes file paths
func NormalizePath(path string) string {
	return filepath.Clean(path)
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path cannot be empty")
	}
	return os.MkdirAll(dirPath, constants.DefaultDirPermission)
}

// FileExists reports whether the path exists and is a regular file
func FileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.Mode().IsRegular()
}

// BaseNameWithoutExt returns the file name with directory and extension stripped
func BaseNameWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// GetFileInfo gets comprehensive file information
func GetFileInfo(filePath string) (*types.FileInfo, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get file stats: %w", err)
	}

	md5Hash, err := CalculateFileMD5(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate file hash: %w", err)
	}

	extension := strings.ToLower(filepath.Ext(filePath))
	if extension != "" && extension[0] == '.' {
		extension = extension[1:]
	}

	mimeType, err := getMimeType(filePath)
	if err != nil {
		mimeType = "application/octet-stream"
	}

	return &types.FileInfo{
		MD5Hash:   md5Hash,
		Extension: extension,
		MimeType:  mimeType,
		Size:      stat.Size(),
	}, nil
}

// CalculateFileMD5 calculates MD5 hash of file
func CalculateFileMD5(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file for MD5 calculation: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate MD5 hash: %w", err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// getMimeType detects MIME type from file content
func getMimeType(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	return http.DetectContentType(buffer[:n]), nil
}

// IsPDFFile checks whether the file looks like a PDF by extension or MIME type
func IsPDFFile(info *types.FileInfo) bool {
	if info.Extension == "pdf" {
		return true
	}
	return strings.HasPrefix(info.MimeType, "application/pdf")
}
