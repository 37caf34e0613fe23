package services

import (
	"log/slog"

	"kindwall/domain"
	"kindwall/repositories"
)

type IBoardService interface {
	Sample(n int) ([]domain.Message, int, error)
}

// BoardService is the read path: random samples plus the total count.
type BoardService struct {
	log      *slog.Logger
	messages repositories.IMessageRepository
}

func NewBoardService(log *slog.Logger, messages repositories.IMessageRepository) *BoardService {
	return &BoardService{log: log, messages: messages}
}

// Sample returns up to n random messages and the board's total size.
// n is clamped by the HTTP layer; an empty board yields an empty slice.
func (s *BoardService) Sample(n int) ([]domain.Message, int, error) {
	messages, err := s.messages.SampleRandom(n)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.messages.Count()
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}
