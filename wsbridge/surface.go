package wsbridge

import (
	"fmt"

	"github.com/phanxgames/gesture"
)

// Surface broadcasts client touch messages as notifications. The message
// itself is the raw event handed to callbacks.
type Surface struct {
	gesture.Listeners
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Dispatch broadcasts msg according to its type.
func (s *Surface) Dispatch(msg *TouchMessage) error {
	switch msg.Type {
	case TypeStart:
		s.Start(msg.Contacts, msg)
	case TypeMove:
		s.Move(msg.Contacts, msg)
	case TypeEnd:
		s.End(msg.Contacts, msg)
	default:
		return fmt.Errorf("%w %q", errUnknownType, msg.Type)
	}
	return nil
}
