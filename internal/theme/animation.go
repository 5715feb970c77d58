package theme

import "strings"

// Animation identifies the condition artwork shown next to the temperature
type Animation string

const (
	AnimSunny  Animation = "sunny"
	AnimMoon   Animation = "moon"
	AnimRainy  Animation = "rainy"
	AnimWindy  Animation = "windy"
	AnimCloudy Animation = "cloudy"
)

type textRule struct {
	match func(text string, day bool) bool
	anim  Animation
}

func is(words ...string) func(string, bool) bool {
	return func(text string, _ bool) bool {
		for _, w := range words {
			if text == w {
				return true
			}
		}
		return false
	}
}

func contains(subs ...string) func(string, bool) bool {
	return func(text string, _ bool) bool {
		for _, s := range subs {
			if strings.Contains(text, s) {
				return true
			}
		}
		return false
	}
}

// textRules run in order after lowercasing and trimming; exact words first,
// then substring fallbacks for the long tail of provider phrases
var textRules = []textRule{
	{func(t string, day bool) bool { return t == "clear" && !day }, AnimMoon},
	{func(t string, day bool) bool { return t == "sunny" || (t == "clear" && day) }, AnimSunny},
	{is("rainy", "light rain", "moderate rain"), AnimRainy},
	{is("windy"), AnimWindy},
	{is("cloudy", "partly cloudy"), AnimCloudy},
	{contains("rain", "drizzle", "shower"), AnimRainy},
	{contains("cloud", "overcast"), AnimCloudy},
	{contains("wind"), AnimWindy},
}

// AnimationFor picks the artwork for a provider condition text. Anything
// unrecognised falls back to sunny.
func AnimationFor(text string, isDay int) Animation {
	t := strings.ToLower(strings.TrimSpace(text))
	day := isDay == 1
	for _, r := range textRules {
		if r.match(t, day) {
			return r.anim
		}
	}
	return AnimSunny
}

var frames = map[Animation][]string{
	AnimSunny: {
		"  \\ | /  \n -- O -- \n  / | \\  ",
		"  . | .  \n -  O  - \n  ' | '  ",
	},
	AnimMoon: {
		"   _.*   \n  (  (   \n   `-'  *",
		" * _.    \n  (  ( * \n   `-'   ",
	},
	AnimRainy: {
		"  .--.   \n (____)  \n ' ' ' ' ",
		"  .--.   \n (____)  \n  ' ' ' '",
	},
	AnimWindy: {
		" ~~~~>   \n   ~~~~> \n ~~~>    ",
		"   ~~~~> \n ~~~>    \n  ~~~~>  ",
	},
	AnimCloudy: {
		"   .--.  \n .(    ). \n(___.__)_)",
		"  .--.   \n.(    ).  \n(___.__)_)",
	},
}

// Frame returns the ASCII frame for tick n, cycling through the animation
func (a Animation) Frame(n int) string {
	f, ok := frames[a]
	if !ok {
		f = frames[AnimSunny]
	}
	if n < 0 {
		n = -n
	}
	return f[n%len(f)]
}
