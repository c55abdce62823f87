// Package queries holds the MongoDB filters used by the repositories.
//
// A Filter is a small typed tree that renders to bson. Repositories build
// filters through the named constructors in this package instead of
// writing bson.M literals inline.
package queries

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

type Operator string

const (
	OpEq       Operator = "eq"
	OpNe       Operator = "ne"
	OpIn       Operator = "in"
	OpContains Operator = "contains"
	OpPrefix   Operator = "prefix"
	OpBetween  Operator = "between"
	OpAnd      Operator = "and"
	OpOr       Operator = "or"
)

type Filter struct {
	Op       Operator
	Field    string
	Value    interface{}
	Lower    interface{}
	Upper    interface{}
	Children []Filter
}

func Eq(field string, value interface{}) Filter {
	return Filter{Op: OpEq, Field: field, Value: value}
}

func Ne(field string, value interface{}) Filter {
	return Filter{Op: OpNe, Field: field, Value: value}
}

func In(field string, values ...interface{}) Filter {
	return Filter{Op: OpIn, Field: field, Value: values}
}

// Contains matches a case-insensitive substring. For array fields it
// matches when any element contains the substring.
func Contains(field, substring string) Filter {
	return Filter{Op: OpContains, Field: field, Value: substring}
}

func Prefix(field, prefix string) Filter {
	return Filter{Op: OpPrefix, Field: field, Value: prefix}
}

// Between matches lower <= field <= upper. A nil bound is open.
func Between(field string, lower, upper interface{}) Filter {
	return Filter{Op: OpBetween, Field: field, Lower: lower, Upper: upper}
}

func And(filters ...Filter) Filter {
	return Filter{Op: OpAnd, Children: filters}
}

func Or(filters ...Filter) Filter {
	return Filter{Op: OpOr, Children: filters}
}

// BSON renders the filter. An empty And matches everything and an empty
// Or matches nothing. An Or with an unbounded branch matches everything.
func (f Filter) BSON() bson.M {
	switch f.Op {
	case OpEq:
		return bson.M{f.Field: f.Value}
	case OpNe:
		return bson.M{f.Field: bson.M{"$ne": f.Value}}
	case OpIn:
		return bson.M{f.Field: bson.M{"$in": f.Value}}
	case OpContains:
		return bson.M{f.Field: bson.M{"$regex": regexp.QuoteMeta(f.Value.(string)), "$options": "i"}}
	case OpPrefix:
		return bson.M{f.Field: bson.M{"$regex": "^" + regexp.QuoteMeta(f.Value.(string))}}
	case OpBetween:
		bounds := bson.M{}
		if f.Lower != nil {
			bounds["$gte"] = f.Lower
		}
		if f.Upper != nil {
			bounds["$lte"] = f.Upper
		}
		if len(bounds) == 0 {
			return bson.M{}
		}
		return bson.M{f.Field: bounds}
	case OpAnd:
		children := make([]bson.M, 0, len(f.Children))
		for _, child := range f.Children {
			rendered := child.BSON()
			if len(rendered) == 0 {
				continue
			}
			children = append(children, rendered)
		}
		switch len(children) {
		case 0:
			return bson.M{}
		case 1:
			return children[0]
		}
		return bson.M{"$and": children}
	case OpOr:
		children := make([]bson.M, 0, len(f.Children))
		for _, child := range f.Children {
			rendered := child.BSON()
			if len(rendered) == 0 {
				return bson.M{}
			}
			children = append(children, rendered)
		}
		switch len(children) {
		case 0:
			return matchNothing()
		case 1:
			return children[0]
		}
		return bson.M{"$or": children}
	}
	return bson.M{}
}

// matchNothing is satisfied by no document since every document has an _id.
func matchNothing() bson.M {
	return bson.M{"_id": bson.M{"$exists": false}}
}
