package ruled

import "strings"

// Bin matches `0` or `1`
func Bin() StrRule {
	return classRule(FailedKind_Bin, func(r rune) bool { return r == '0' || r == '1' })
}

// Oct matches a digit from `0` to `7`
func Oct() StrRule {
	return classRule(FailedKind_Oct, func(r rune) bool { return r >= '0' && r <= '7' })
}

// Dec matches a digit from `0` to `9`
func Dec() StrRule {
	return classRule(FailedKind_Dec, isDec)
}

// Hex matches a decimal digit or a letter from `a` to `f`, in either
// case
func Hex() StrRule {
	return classRule(FailedKind_Hex, func(r rune) bool {
		return isDec(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	})
}

// Latin matches an ASCII letter
func Latin() StrRule {
	return classRule(FailedKind_Latin, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
}

// White matches one of ` `, `\t`, `\n` and `\r`
func White() StrRule {
	return classRule(FailedKind_White, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// Space matches the space character
func Space() StrRule {
	return Char(' ')
}

// Whites matches any number of whitespace characters, including none
func Whites() StrRule {
	return Many[string](White(), Splice)
}

// Nl matches a line break.  `\r\n` is tried first since it's longer
// than the bare `\n` and `\r` it starts with.
func Nl() StrRule {
	return func(input string) Outcome[string, string, Failed] {
		if strings.HasPrefix(input, "\r\n") {
			return split(input, 2)
		}
		if input != "" && (input[0] == '\n' || input[0] == '\r') {
			return split(input, 1)
		}
		return Expected[string, string](FailedOf(FailedKind_Nl))
	}
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }
