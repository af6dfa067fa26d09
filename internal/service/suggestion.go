package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// Generator produces text for a prompt. *ai.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CacheRecorder counts suggestion cache lookups. *observability.Metrics satisfies it.
type CacheRecorder interface {
	SuggestionCache(hit bool)
}

type eventLookup interface {
	Event(id int) (domain.ItineraryEvent, error)
}

// SuggestionService returns cached travel tips for itinerary events and
// generates the missing ones.
type SuggestionService struct {
	events eventLookup
	repo   repo.SuggestionRepo
	gen    Generator
	rec    CacheRecorder
}

// NewSuggestionService constructs a SuggestionService. rec may be nil.
func NewSuggestionService(events eventLookup, r repo.SuggestionRepo, gen Generator, rec CacheRecorder) *SuggestionService {
	if rec == nil {
		rec = nopCacheRecorder{}
	}
	return &SuggestionService{events: events, repo: r, gen: gen, rec: rec}
}

// Get returns the cached suggestion.
// Returns domain.ErrNotFound if the event is unknown or nothing is cached.
func (s *SuggestionService) Get(ctx context.Context, eventID int) (domain.Suggestion, error) {
	if _, err := s.events.Event(eventID); err != nil {
		return domain.Suggestion{}, fmt.Errorf("service.SuggestionService.Get: %w", err)
	}
	result, err := s.repo.Get(ctx, eventID)
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("service.SuggestionService.Get: %w", err)
	}
	return result, nil
}

// Enhance returns the cached suggestion for the event, generating and
// caching one first when there is none. cached reports which happened.
func (s *SuggestionService) Enhance(ctx context.Context, eventID int) (sug domain.Suggestion, cached bool, err error) {
	ev, err := s.events.Event(eventID)
	if err != nil {
		return domain.Suggestion{}, false, fmt.Errorf("service.SuggestionService.Enhance: %w", err)
	}

	hit, err := s.repo.Get(ctx, eventID)
	switch {
	case err == nil:
		s.rec.SuggestionCache(true)
		return hit, true, nil
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Suggestion{}, false, fmt.Errorf("service.SuggestionService.Enhance: %w", err)
	}
	s.rec.SuggestionCache(false)

	text, err := s.gen.Generate(ctx, BuildPrompt(ev))
	if err != nil {
		return domain.Suggestion{}, false, fmt.Errorf("service.SuggestionService.Enhance: %w", err)
	}
	saved, err := s.repo.Put(ctx, domain.Suggestion{EventID: eventID, Body: text})
	if err != nil {
		return domain.Suggestion{}, false, fmt.Errorf("service.SuggestionService.Enhance: %w", err)
	}
	return saved, false, nil
}

// Delete clears the cached suggestion so the next Enhance regenerates it.
func (s *SuggestionService) Delete(ctx context.Context, eventID int) error {
	if err := s.repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("service.SuggestionService.Delete: %w", err)
	}
	return nil
}

// List returns one page of cached suggestions.
func (s *SuggestionService) List(ctx context.Context, p domain.PaginationParams) (domain.Page[domain.Suggestion], error) {
	items, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return domain.Page[domain.Suggestion]{}, fmt.Errorf("service.SuggestionService.List: %w", err)
	}
	if items == nil {
		items = []domain.Suggestion{}
	}
	return domain.Page[domain.Suggestion]{Items: items, Total: total}, nil
}

// BuildPrompt renders the tip request for an event. The same event always
// yields the same prompt.
func BuildPrompt(ev domain.ItineraryEvent) string {
	return fmt.Sprintf(`Você é um assistente de viagens prestativo para o Japão. Forneça dicas práticas de viagem para visitar "%s" em %s. Inclua:
1.  **Transporte:** Uma rota de transporte público sugerida a partir de uma grande estação próxima (ex: Estação de Shinjuku, Estação de Quioto).
2.  **Alimentação:** Três recomendações de restaurantes próximos com tipo de culinária e uma faixa de preço aproximada (ex: $, $$, $$$).
3.  **Cultura/Dica:** Uma dica cultural local, uma regra de etiqueta ou uma sugestão de 'não perca' para este local específico.
Formate a resposta em Markdown claro e conciso, com títulos em negrito.`, ev.Title, ev.Location)
}

type nopCacheRecorder struct{}

func (nopCacheRecorder) SuggestionCache(bool) {}
