package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DanRulev/easyflash.git/internal/models"
)

func (f *FlashAPI) Words(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	if err := f.do(ctx, "list words", http.MethodGet, "/words", nil, &cards); err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []models.Card{}
	}
	return cards, nil
}

func (f *FlashAPI) CreateWord(ctx context.Context, in models.CardInput) (models.Card, error) {
	var card models.Card
	if err := f.do(ctx, "create word", http.MethodPost, "/words", in, &card); err != nil {
		return models.Card{}, err
	}
	return card, nil
}

func (f *FlashAPI) UpdateWord(ctx context.Context, id int64, in models.CardInput) (models.Card, error) {
	var card models.Card
	if err := f.do(ctx, "update word", http.MethodPut, fmt.Sprintf("/words/%d", id), in, &card); err != nil {
		return models.Card{}, err
	}
	return card, nil
}

func (f *FlashAPI) DeleteWord(ctx context.Context, id int64) error {
	return f.do(ctx, "delete word", http.MethodDelete, fmt.Sprintf("/words/%d", id), nil, nil)
}

// AddProgress adds points to the word's progress on the server. The API may
// answer with the updated card or with a bare status; in the latter case the
// returned card is nil.
func (f *FlashAPI) AddProgress(ctx context.Context, id int64, points int) (*models.Card, error) {
	query := url.Values{}
	query.Set("points", strconv.Itoa(points))
	path := fmt.Sprintf("/words/%d/progress?%s", id, query.Encode())

	var card models.Card
	if err := f.do(ctx, "add progress", http.MethodPut, path, nil, &card); err != nil {
		// 2xx with an empty or non-card body
		var tErr *models.TransportError
		if errors.As(err, &tErr) && tErr.StatusCode != 0 && tErr.Err != nil {
			return nil, nil
		}
		return nil, err
	}
	if card.ID == 0 {
		return nil, nil
	}

	return &card, nil
}
