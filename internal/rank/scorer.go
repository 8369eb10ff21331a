package rank

import "jobradar/internal/domain"

type Scorer interface {
	Score(l domain.Listing) (score int, label domain.Label)
}
