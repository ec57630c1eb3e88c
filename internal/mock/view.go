package mock

import (
	"context"

	"github.com/fhuszti/medias-catalog-go/internal/model"
	"github.com/fhuszti/medias-catalog-go/internal/port"
)

// Renderer implements port.Renderer for tests.
type Renderer struct {
	Rendered    []model.Media
	RenderCalls int
}

func (r *Renderer) Render(ctx context.Context, items []model.Media) {
	r.RenderCalls++
	r.Rendered = items
}

// Notifier implements port.Notifier for tests.
type Notifier struct {
	Messages []port.Message
}

func (n *Notifier) Notify(ctx context.Context, msg port.Message) {
	n.Messages = append(n.Messages, msg)
}

// Last returns the most recent message, or the zero Message.
func (n *Notifier) Last() port.Message {
	if len(n.Messages) == 0 {
		return port.Message{}
	}
	return n.Messages[len(n.Messages)-1]
}

// Confirmer implements port.Confirmer for tests.
type Confirmer struct {
	Answer    bool
	Called    bool
	GotPrompt string
}

func (c *Confirmer) Confirm(ctx context.Context, prompt string) bool {
	c.Called = true
	c.GotPrompt = prompt
	return c.Answer
}
