package expr

import "strings"

// ImplicitMul inserts explicit '*' where the source relies on juxtaposition:
// "2x" -> "2*x", "(1+2)x" -> "(1+2)*x", "2(1+2)" -> "2*(1+2)", "x2" -> "x*2".
// Both boundary rules are applied over the whole string, so chained cases
// like "2(1+2)x" gain every missing operator in one pass.
//
// A letter run directly followed by '(' is left alone when the run names a
// builtin function, so "sin(x)" stays a call instead of becoming "sin*(x)".
func ImplicitMul(src string) string {
	runes := []rune(src)
	var out strings.Builder
	out.Grow(len(src) + 8)

	for i, r := range runes {
		if i > 0 {
			prev := runes[i-1]
			if needsStar(prev, r) && !callBoundary(runes, i) {
				out.WriteRune('*')
			}
		}
		out.WriteRune(r)
	}
	return out.String()
}

// needsStar reports whether a '*' belongs between prev and next.
func needsStar(prev, next rune) bool {
	// digit or ')' followed by letter or '('
	if (isDigit(prev) || prev == ')') && (isLetter(next) || next == '(') {
		return true
	}
	// letter or ')' followed by digit or '('
	if (isLetter(prev) || prev == ')') && (isDigit(next) || next == '(') {
		return true
	}
	return false
}

// callBoundary reports whether position i sits between a builtin function
// name and its opening parenthesis.
func callBoundary(runes []rune, i int) bool {
	if runes[i] != '(' || !isLetter(runes[i-1]) {
		return false
	}
	start := i - 1
	for start > 0 && isLetter(runes[start-1]) {
		start--
	}
	_, ok := builtins[strings.ToLower(string(runes[start:i]))]
	return ok
}

// NormalizePower folds the alternate "**" power spelling into the parser's
// '^' operator. The fold only fires between operand characters, mirroring
// the guard on the source notation so stray asterisks elsewhere stay errors.
func NormalizePower(src string) string {
	runes := []rune(src)
	var out strings.Builder
	out.Grow(len(src))

	for i := 0; i < len(runes); i++ {
		if runes[i] == '*' && i+1 < len(runes) && runes[i+1] == '*' &&
			i > 0 && isWordChar(runes[i-1]) &&
			i+2 < len(runes) && (isWordChar(runes[i+2]) || runes[i+2] == '(') {
			out.WriteRune('^')
			i++
			continue
		}
		out.WriteRune(runes[i])
	}
	return out.String()
}

// Normalize applies both rewrite passes in order.
func Normalize(src string) string {
	return NormalizePower(ImplicitMul(src))
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isWordChar(r rune) bool { return isDigit(r) || isLetter(r) }
