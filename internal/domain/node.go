package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
)

// NodeKind - тип значения в снапшоте
type NodeKind int

const (
	KindNull NodeKind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindObject
)

func (k NodeKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Field - пара ключ/значение объекта, в порядке документа
type Field struct {
	Key   string
	Value *Node
}

// Node - разобранное JSON значение снапшота.
// Порядок полей объекта совпадает с порядком в исходном документе,
// исходное представление сохраняется в raw и отдаётся клиенту как есть.
// Объекты с повторными ключами (и контейнеры с ними) перекодируются из
// Fields/Items, чтобы ответ совпадал с тем, по чему шёл поиск.
type Node struct {
	Kind   NodeKind
	Bool   bool
	Number float64
	Str    string
	Items  []*Node
	Fields []Field

	raw     []byte
	rebuilt bool
}

// ParseNode разбирает JSON документ целиком
func ParseNode(data []byte) (*Node, error) {
	// jsonparser не валидирует документ полностью
	var probe json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("read root value: %w", err)
	}

	return buildNode(value, dataType)
}

func buildNode(value []byte, dataType jsonparser.ValueType) (*Node, error) {
	switch dataType {
	case jsonparser.Null:
		return &Node{Kind: KindNull, raw: []byte("null")}, nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, fmt.Errorf("parse bool %q: %w", value, err)
		}
		return &Node{Kind: KindBool, Bool: b, raw: copyBytes(value)}, nil

	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(value)
		if err != nil {
			// За пределами float64 (1e400): ±Inf, raw без изменений
			f, err = strconv.ParseFloat(string(value), 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("parse number %q: %w", value, err)
			}
		}
		return &Node{Kind: KindNumber, Number: f, raw: copyBytes(value)}, nil

	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, fmt.Errorf("parse string: %w", err)
		}
		raw := make([]byte, 0, len(value)+2)
		raw = append(raw, '"')
		raw = append(raw, value...)
		raw = append(raw, '"')
		return &Node{Kind: KindString, Str: s, raw: raw}, nil

	case jsonparser.Array:
		node := &Node{Kind: KindSequence, Items: []*Node{}, raw: copyBytes(value)}
		var itemErr error
		_, err := jsonparser.ArrayEach(value, func(v []byte, dt jsonparser.ValueType, _ int, err error) {
			if itemErr != nil {
				return
			}
			if err != nil {
				itemErr = err
				return
			}
			child, err := buildNode(v, dt)
			if err != nil {
				itemErr = err
				return
			}
			node.Items = append(node.Items, child)
			if child.rebuilt {
				node.rebuilt = true
			}
		})
		if err != nil {
			return nil, fmt.Errorf("parse array: %w", err)
		}
		if itemErr != nil {
			return nil, itemErr
		}
		if node.rebuilt {
			node.raw = encodeSequence(node.Items)
		}
		return node, nil

	case jsonparser.Object:
		node := &Node{Kind: KindObject, Fields: []Field{}, raw: copyBytes(value)}
		positions := make(map[string]int)
		err := jsonparser.ObjectEach(value, func(k []byte, v []byte, dt jsonparser.ValueType, _ int) error {
			child, err := buildNode(v, dt)
			if err != nil {
				return err
			}
			key := string(k)
			if child.rebuilt {
				node.rebuilt = true
			}
			// Повторный ключ: позиция первого, значение последнего
			if i, ok := positions[key]; ok {
				node.Fields[i].Value = child
				node.rebuilt = true
				return nil
			}
			positions[key] = len(node.Fields)
			node.Fields = append(node.Fields, Field{Key: key, Value: child})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("parse object: %w", err)
		}
		if node.rebuilt {
			raw, err := encodeObject(node.Fields)
			if err != nil {
				return nil, err
			}
			node.raw = raw
		}
		return node, nil

	default:
		return nil, fmt.Errorf("unsupported json value type %v", dataType)
	}
}

func encodeSequence(items []*Node) []byte {
	out := []byte{'['}
	for i, item := range items {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, item.raw...)
	}
	return append(out, ']')
}

func encodeObject(fields []Field) ([]byte, error) {
	out := []byte{'{'}
	for i, f := range fields {
		if i > 0 {
			out = append(out, ',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, fmt.Errorf("encode key %q: %w", f.Key, err)
		}
		out = append(out, key...)
		out = append(out, ':')
		out = append(out, f.Value.raw...)
	}
	return append(out, '}'), nil
}

func copyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (n *Node) IsObject() bool {
	return n != nil && n.Kind == KindObject
}

func (n *Node) IsSequence() bool {
	return n != nil && n.Kind == KindSequence
}

// Get возвращает значение поля объекта
func (n *Node) Get(key string) (*Node, bool) {
	if !n.IsObject() {
		return nil, false
	}
	for _, f := range n.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Values - значения объекта по порядку полей или элементы последовательности
func (n *Node) Values() []*Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindSequence:
		return n.Items
	case KindObject:
		values := make([]*Node, len(n.Fields))
		for i, f := range n.Fields {
			values[i] = f.Value
		}
		return values
	default:
		return nil
	}
}

// Text приводит значение к строке для сравнения подстрок:
// null -> "null", bool -> "true"/"false", число в каноническом виде,
// последовательность -> элементы через запятую (null как пустая строка),
// объект -> "[object Object]".
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(n.Bool)
	case KindNumber:
		return FormatNumber(n.Number)
	case KindString:
		return n.Str
	case KindSequence:
		parts := make([]string, len(n.Items))
		for i, item := range n.Items {
			if item.Kind == KindNull {
				continue
			}
			parts[i] = item.Text()
		}
		return strings.Join(parts, ",")
	case KindObject:
		return "[object Object]"
	default:
		return ""
	}
}

// Float приводит значение к числу: числа как есть, строки парсятся,
// всё остальное - NaN
func (n *Node) Float() float64 {
	if n == nil {
		return math.NaN()
	}
	switch n.Kind {
	case KindNumber:
		return n.Number
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(n.Str), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// MarshalJSON отдаёт исходное представление значения
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil || len(n.raw) == 0 {
		return []byte("null"), nil
	}
	return n.raw, nil
}

// FormatNumber - кратчайшая десятичная запись; экспонента для
// |f| >= 1e21 и |f| < 1e-6, бесконечности как Infinity/-Infinity
func FormatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
