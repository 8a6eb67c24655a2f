package importer

import (
	"errors"
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/tally/internal/importer/cgd"
	"github.com/MrJamesThe3rd/tally/internal/matching"
)

var ErrUnknownBank = errors.New("unknown bank")

type Service struct {
	parsers map[Bank]Parser
}

func NewService() *Service {
	return &Service{
		parsers: map[Bank]Parser{
			BankCGD: cgd.NewParser(),
		},
	}
}

func (s *Service) Import(bank Bank, r io.Reader) ([]matching.FeedRow, error) {
	p, ok := s.parsers[bank]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBank, bank)
	}

	rows, err := p.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s export: %w", bank, err)
	}

	return rows, nil
}
