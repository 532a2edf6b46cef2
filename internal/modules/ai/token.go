package ai

import (
	"github.com/reusedev/mockup-hub/config"
	"github.com/reusedev/mockup-hub/internal/consts"
)

type Token struct {
	Token    string
	Desc     string
	Supplier consts.ModelSupplier
}

func (t Token) GetSupplier() consts.ModelSupplier {
	return t.Supplier
}

type TokenWithModel struct {
	Token
	Model string // supplier model
}

// OrderedTokens resolves the configured request order into concrete tokens.
// Entries whose supplier has no token configured are skipped.
func OrderedTokens(cfg *config.Config) []TokenWithModel {
	ret := make([]TokenWithModel, 0, len(cfg.RequestOrder))
	for _, r := range cfg.RequestOrder {
		supplier := consts.ModelSupplier(r.Supplier)
		var token string
		switch supplier {
		case consts.Geek:
			token = cfg.Geek.Token
		case consts.Tuzi:
			token = cfg.Tuzi.Token
		case consts.V3:
			token = cfg.V3.Token
		}
		if token == "" {
			continue
		}
		ret = append(ret, TokenWithModel{
			Token: Token{Token: token, Desc: r.TokenName, Supplier: supplier},
			Model: r.Model,
		})
	}
	return ret
}
