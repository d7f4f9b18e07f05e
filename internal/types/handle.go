// internal/types/handle.go
package types

import "fmt"

// Handle — слабая ссылка на врага в реестре: индекс слота плюс поколение.
// Нулевое значение никогда не бывает действительным, поколения начинаются с 1.
type Handle struct {
	Index      uint32
	Generation uint32
}

// IsZero сообщает, что handle не указывает ни на какой слот
func (h Handle) IsZero() bool {
	return h.Generation == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("enemy#%d.%d", h.Index, h.Generation)
}
