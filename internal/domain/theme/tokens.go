package theme

// Token is a semantic key rendered output references instead of a literal
// colour or dimension.
type Token string

const (
	TokenPrimary               Token = "primary"
	TokenPrimaryForeground     Token = "primary-foreground"
	TokenSecondary             Token = "secondary"
	TokenSecondaryForeground   Token = "secondary-foreground"
	TokenAccent                Token = "accent"
	TokenAccentForeground      Token = "accent-foreground"
	TokenBackground            Token = "background"
	TokenForeground            Token = "foreground"
	TokenCard                  Token = "card"
	TokenCardForeground        Token = "card-foreground"
	TokenPopover               Token = "popover"
	TokenPopoverForeground     Token = "popover-foreground"
	TokenMuted                 Token = "muted"
	TokenMutedForeground       Token = "muted-foreground"
	TokenDestructive           Token = "destructive"
	TokenDestructiveForeground Token = "destructive-foreground"
	TokenBorder                Token = "border"
	TokenInput                 Token = "input"
	TokenRing                  Token = "ring"
	TokenRadius                Token = "radius"
)

var tokens = [...]Token{
	TokenPrimary,
	TokenPrimaryForeground,
	TokenSecondary,
	TokenSecondaryForeground,
	TokenAccent,
	TokenAccentForeground,
	TokenBackground,
	TokenForeground,
	TokenCard,
	TokenCardForeground,
	TokenPopover,
	TokenPopoverForeground,
	TokenMuted,
	TokenMutedForeground,
	TokenDestructive,
	TokenDestructiveForeground,
	TokenBorder,
	TokenInput,
	TokenRing,
	TokenRadius,
}

// Tokens returns every known token in canonical order.
func Tokens() []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens[:])
	return out
}

// Valid reports whether t is one of the known tokens.
func (t Token) Valid() bool {
	for _, known := range tokens {
		if known == t {
			return true
		}
	}
	return false
}

// VariableName returns the custom-property style name for a token, e.g. "--primary".
func VariableName(t Token) string {
	return "--" + string(t)
}

// Config maps tokens to values. A partial Config overrides only the keys it holds.
type Config map[Token]string

// Clone returns an independent copy of c.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// LightConfig returns a copy of the canonical light token set.
func LightConfig() Config {
	return baseLight.Clone()
}

// DarkConfig returns a copy of the canonical dark token set.
func DarkConfig() Config {
	return baseDark.Clone()
}

// CanonicalConfig returns the dark or light canonical set.
func CanonicalConfig(dark bool) Config {
	if dark {
		return DarkConfig()
	}
	return LightConfig()
}

var baseLight = Config{
	TokenPrimary:               "222.2 47.4% 11.2%",
	TokenPrimaryForeground:     "210 40% 98%",
	TokenSecondary:             "210 40% 96%",
	TokenSecondaryForeground:   "222.2 84% 4.9%",
	TokenAccent:                "210 40% 96%",
	TokenAccentForeground:      "222.2 84% 4.9%",
	TokenBackground:            "0 0% 100%",
	TokenForeground:            "222.2 84% 4.9%",
	TokenCard:                  "0 0% 100%",
	TokenCardForeground:        "222.2 84% 4.9%",
	TokenPopover:               "0 0% 100%",
	TokenPopoverForeground:     "222.2 84% 4.9%",
	TokenMuted:                 "210 40% 96%",
	TokenMutedForeground:       "215.4 16.3% 46.9%",
	TokenDestructive:           "0 84.2% 60.2%",
	TokenDestructiveForeground: "210 40% 98%",
	TokenBorder:                "214.3 31.8% 91.4%",
	TokenInput:                 "214.3 31.8% 91.4%",
	TokenRing:                  "222.2 84% 4.9%",
	TokenRadius:                "0.5rem",
}

var baseDark = Config{
	TokenPrimary:               "210 40% 98%",
	TokenPrimaryForeground:     "222.2 47.4% 11.2%",
	TokenSecondary:             "217.2 32.6% 17.5%",
	TokenSecondaryForeground:   "210 40% 98%",
	TokenAccent:                "217.2 32.6% 17.5%",
	TokenAccentForeground:      "210 40% 98%",
	TokenBackground:            "222.2 84% 4.9%",
	TokenForeground:            "210 40% 98%",
	TokenCard:                  "222.2 84% 4.9%",
	TokenCardForeground:        "210 40% 98%",
	TokenPopover:               "222.2 84% 4.9%",
	TokenPopoverForeground:     "210 40% 98%",
	TokenMuted:                 "217.2 32.6% 17.5%",
	TokenMutedForeground:       "215 20.2% 65.1%",
	TokenDestructive:           "0 62.8% 30.6%",
	TokenDestructiveForeground: "210 40% 98%",
	TokenBorder:                "217.2 32.6% 17.5%",
	TokenInput:                 "217.2 32.6% 17.5%",
	TokenRing:                  "212.7 26.8% 83.9%",
	TokenRadius:                "0.5rem",
}
