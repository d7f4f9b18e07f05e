// internal/assets/font_manager.go
package assets

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager управляет загрузкой и кэшированием шрифтов по размеру.
type FontManager struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager загружает TTF из path. При пустом path берётся встроенный Go Regular.
func NewFontManager(path string) (*FontManager, error) {
	data := goregular.TTF
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", path, err)
		}
		data = raw
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontManager{font: tt, faces: make(map[float64]font.Face)}, nil
}

// Face возвращает начертание заданного размера. При ошибке используется растровый 7x13.
func (m *FontManager) Face(size float64) font.Face {
	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("[FontManager] failed to create face of size %.0f: %v, falling back to 7x13", size, err)
		return basicfont.Face7x13
	}
	m.faces[size] = face
	return face
}

// Close освобождает все созданные начертания.
func (m *FontManager) Close() {
	for size, face := range m.faces {
		face.Close()
		delete(m.faces, size)
	}
}
