package encode

// Tokens shared by every board.
const (
	// TrueZero marks an Empty tile with no markers nearby.
	TrueZero = ":blue_square:"
	// Zero is the numeric zero; it uses the same glyph as TrueZero.
	Zero = ":blue_square:"
	// Unknown is shown for a total outside the table.
	Unknown = "?"

	// DefaultMine is the default mine token.
	DefaultMine = ":boom:"
	// DefaultAntiMine is the default anti-mine token.
	DefaultAntiMine = ":rosette:"

	// MaxMagnitude is the largest |total| with a dedicated token.
	MaxMagnitude = 8
)

// positive[n] is the token for total n, 0 ≤ n ≤ 8.
var positive = [MaxMagnitude + 1]string{
	Zero,
	":one:",
	":two:",
	":three:",
	":four:",
	":five:",
	":six:",
	":seven:",
	":eight:",
}

// negative[n-1] is the token for total -n, 1 ≤ n ≤ 8.
var negative = [MaxMagnitude]string{
	":regional_indicator_a:",
	":regional_indicator_b:",
	":regional_indicator_c:",
	":regional_indicator_d:",
	":regional_indicator_e:",
	":regional_indicator_f:",
	":regional_indicator_g:",
	":regional_indicator_h:",
}

// medals[n-1] is the false-zero token for n mines cancelled by n anti-mines.
// Counts beyond the table share GenericMedal.
var medals = [...]string{
	":first_place:",
	":second_place:",
	":third_place:",
}

// GenericMedal is the false-zero token for four or more cancelled pairs.
const GenericMedal = ":medal:"

// Symbols holds the configurable marker tokens.
type Symbols struct {
	Mine     string
	AntiMine string
}

// DefaultSymbols returns :boom: and :rosette:.
func DefaultSymbols() Symbols {
	return Symbols{Mine: DefaultMine, AntiMine: DefaultAntiMine}
}
