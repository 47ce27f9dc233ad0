package json

import "strconv"

// Parse parses a complete JSON value from input and returns it. It
// returns false on any grammar violation — unterminated strings,
// mismatched brackets, illegal tokens, trailing garbage is not checked
// (only a single value is required to parse; callers that care about
// trailing bytes must check manually). Duplicate object keys panic
// rather than returning false, matching ObjectMap.Insert.
func Parse(input []byte) (Value, bool) {
	t := newTokenizer(input)
	return parseValue(t)
}

func parseValue(t *tokenizer) (Value, bool) {
	tok := t.Next()
	switch tok.kind {
	case tokString:
		return Value{Kind: String, Str: tok.text}, true
	case tokTrue:
		return Value{Kind: True}, true
	case tokFalse:
		return Value{Kind: False}, true
	case tokNull:
		return Value{Kind: Null}, true
	case tokNumber:
		n, err := strconv.ParseFloat(string(tok.text), 64)
		if err != nil {
			return Value{}, false
		}
		return Value{Kind: Number, Num: n}, true
	case tokLBracket:
		return parseArray(t)
	case tokLBrace:
		return parseObject(t)
	default:
		return Value{}, false
	}
}

func parseArray(t *tokenizer) (Value, bool) {
	var elems []Value

	if peek := t.Peek(); peek.kind == tokRBracket {
		t.Next()
		return Value{Kind: Array, Arr: elems}, true
	}

	for {
		elem, ok := parseValue(t)
		if !ok {
			return Value{}, false
		}
		elems = append(elems, elem)

		tok := t.Next()
		switch tok.kind {
		case tokRBracket:
			return Value{Kind: Array, Arr: elems}, true
		case tokComma:
			continue
		default:
			return Value{}, false
		}
	}
}

func parseObject(t *tokenizer) (Value, bool) {
	obj := NewObjectMap()

	if peek := t.Peek(); peek.kind == tokRBrace {
		t.Next()
		return Value{Kind: Object, Obj: obj}, true
	}

	for {
		keyTok := t.Next()
		if keyTok.kind != tokString {
			return Value{}, false
		}

		colon := t.Next()
		if colon.kind != tokColon {
			return Value{}, false
		}

		val, ok := parseValue(t)
		if !ok {
			return Value{}, false
		}

		obj.Insert(keyTok.text, val)

		tok := t.Next()
		switch tok.kind {
		case tokRBrace:
			return Value{Kind: Object, Obj: obj}, true
		case tokComma:
			continue
		default:
			return Value{}, false
		}
	}
}
