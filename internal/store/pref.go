package store

import (
	"context"
	"fmt"

	"github.com/thinkle/deep/ent"
	"github.com/thinkle/deep/ent/pref"
)

// prefsRepo implements PrefsRepo using the ent client.
type prefsRepo struct {
	client *ent.Client
}

func (r *prefsRepo) GetPref(ctx context.Context, key string) (string, error) {
	p, err := r.client.Pref.Query().
		Where(pref.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query pref %s: %w", key, err)
	}
	return p.Value, nil
}

func (r *prefsRepo) SetPref(ctx context.Context, key, value string) error {
	n, err := r.client.Pref.Update().
		Where(pref.Key(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update pref %s: %w", key, err)
	}
	if n > 0 {
		return nil
	}
	_, err = r.client.Pref.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create pref %s: %w", key, err)
	}
	return nil
}
