package content

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// probeImage 读取静态目录中图片的宽高；远程地址或缺失文件返回 0。
func probeImage(staticDir, src string) (int, int, error) {
	if staticDir == "" || !strings.HasPrefix(src, "/") {
		return 0, 0, nil
	}

	path := filepath.Join(staticDir, filepath.FromSlash(strings.TrimPrefix(src, "/")))
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
