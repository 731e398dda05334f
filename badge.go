package mdwizard

import (
	"context"
	"fmt"
	"log/slog"
)

// Badge appends a shield image wrapped in a link, with no trailing newline.
// kind is matched case-insensitively against BuyMeACoffee, GitHub and Twitter.
// GitHub takes a username and a repository; the others take a username.
// Missing params render as empty strings.
//
// An unsupported kind is logged as a warning and leaves the buffer unchanged.
func (b *Builder) Badge(kind string, params ...string) *Builder {
	k, err := ParseBadgeKind(kind)
	if err != nil {
		b.logger.LogAttrs(context.Background(), slog.LevelWarn, "mdwizard: badge skipped",
			slog.String("badge", kind),
			slog.String("error", err.Error()),
		)
		return b
	}
	return b.Write(badgeMarkdown(k, params))
}

func badgeMarkdown(k BadgeKind, params []string) string {
	user := paramAt(params, 0)
	switch k {
	case BadgeBuyMeACoffee:
		return fmt.Sprintf("[![Buy Me a Coffee](https://img.shields.io/badge/Donate-Buy%%20Me%%20a%%20Coffee-orange.svg)](https://www.buymeacoffee.com/%s)", user)
	case BadgeGitHub:
		return fmt.Sprintf("[![GitHub](https://img.shields.io/github/followers/%s?style=social)](https://github.com/%s/%s)", user, user, paramAt(params, 1))
	case BadgeTwitter:
		return fmt.Sprintf("[![Twitter](https://img.shields.io/twitter/follow/%s?style=social)](https://twitter.com/%s)", user, user)
	}
	return ""
}

func paramAt(params []string, i int) string {
	if i < len(params) {
		return params[i]
	}
	return ""
}
