package ports

import (
	"context"

	"github.com/jfgoncalves/morning-weather/internal/domain/entities"
)

// Sender delivers a fully composed email through a mail relay.
type Sender interface {
	Send(ctx context.Context, email *entities.Email) error
}

type SenderFactory interface {
	CreateSender(host string, port int, username, password string) Sender
}
