package ptween

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tanema/gween/ease"
)

// ErrUnknownEase is returned by Ease for names with no easing function.
var ErrUnknownEase = errors.New("ptween: unknown easing function")

var easings = map[string]ease.TweenFunc{
	"linear": ease.Linear,

	"inquad": ease.InQuad, "outquad": ease.OutQuad, "inoutquad": ease.InOutQuad, "outinquad": ease.OutInQuad,
	"incubic": ease.InCubic, "outcubic": ease.OutCubic, "inoutcubic": ease.InOutCubic, "outincubic": ease.OutInCubic,
	"inquart": ease.InQuart, "outquart": ease.OutQuart, "inoutquart": ease.InOutQuart, "outinquart": ease.OutInQuart,
	"inquint": ease.InQuint, "outquint": ease.OutQuint, "inoutquint": ease.InOutQuint, "outinquint": ease.OutInQuint,
	"insine": ease.InSine, "outsine": ease.OutSine, "inoutsine": ease.InOutSine, "outinsine": ease.OutInSine,
	"inexpo": ease.InExpo, "outexpo": ease.OutExpo, "inoutexpo": ease.InOutExpo, "outinexpo": ease.OutInExpo,
	"incirc": ease.InCirc, "outcirc": ease.OutCirc, "inoutcirc": ease.InOutCirc, "outincirc": ease.OutInCirc,
	"inelastic": ease.InElastic, "outelastic": ease.OutElastic, "inoutelastic": ease.InOutElastic, "outinelastic": ease.OutInElastic,
	"inback": ease.InBack, "outback": ease.OutBack, "inoutback": ease.InOutBack, "outinback": ease.OutInBack,
	"inbounce": ease.InBounce, "outbounce": ease.OutBounce, "inoutbounce": ease.InOutBounce, "outinbounce": ease.OutInBounce,
}

// normalizeEase folds case and drops separators so "in-out-quad", "InOutQuad"
// and "in_out_quad" all resolve to the same key.
func normalizeEase(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

// Ease returns the easing function with the given name. Matching ignores case
// and '-', '_' or space separators. An empty name yields Linear.
func Ease(name string) (ease.TweenFunc, error) {
	key := normalizeEase(name)
	if key == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	return fn, nil
}

// EaseNames returns the normalized names accepted by Ease, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for k := range easings {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
