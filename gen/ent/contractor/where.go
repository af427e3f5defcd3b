// Code generated by ent, DO NOT EDIT.

package contractor

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldName, v))
}

// Abbreviation applies equality check predicate on the "abbreviation" field. It's identical to AbbreviationEQ.
func Abbreviation(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldAbbreviation, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldType, v))
}

// Trade applies equality check predicate on the "trade" field. It's identical to TradeEQ.
func Trade(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldTrade, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldStatus, v))
}

// SortOrder applies equality check predicate on the "sort_order" field. It's identical to SortOrderEQ.
func SortOrder(v int) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldSortOrder, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.Contractor {
	return predicate.Contractor(sql.FieldNotIn(FieldProjectID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Contractor {
	return predicate.Contractor(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Contractor {
	return predicate.Contractor(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldContainsFold(FieldName, v))
}

// AbbreviationEQ applies the EQ predicate on the "abbreviation" field.
func AbbreviationEQ(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldAbbreviation, v))
}

// AbbreviationNEQ applies the NEQ predicate on the "abbreviation" field.
func AbbreviationNEQ(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldNEQ(FieldAbbreviation, v))
}

// AbbreviationIn applies the In predicate on the "abbreviation" field.
func AbbreviationIn(vs ...string) predicate.Contractor {
	return predicate.Contractor(sql.FieldIn(FieldAbbreviation, vs...))
}

// AbbreviationNotIn applies the NotIn predicate on the "abbreviation" field.
func AbbreviationNotIn(vs ...string) predicate.Contractor {
	return predicate.Contractor(sql.FieldNotIn(FieldAbbreviation, vs...))
}

// AbbreviationGT applies the GT predicate on the "abbreviation" field.
func AbbreviationGT(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldGT(FieldAbbreviation, v))
}

// AbbreviationGTE applies the GTE predicate on the "abbreviation" field.
func AbbreviationGTE(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldGTE(FieldAbbreviation, v))
}

// AbbreviationLT applies the LT predicate on the "abbreviation" field.
func AbbreviationLT(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldLT(FieldAbbreviation, v))
}

// AbbreviationLTE applies the LTE predicate on the "abbreviation" field.
func AbbreviationLTE(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldLTE(FieldAbbreviation, v))
}

// AbbreviationContains applies the Contains predicate on the "abbreviation" field.
func AbbreviationContains(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldContains(FieldAbbreviation, v))
}

// AbbreviationHasPrefix applies the HasPrefix predicate on the "abbreviation" field.
func AbbreviationHasPrefix(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldHasPrefix(FieldAbbreviation, v))
}

// AbbreviationHasSuffix applies the HasSuffix predicate on the "abbreviation" field.
func AbbreviationHasSuffix(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldHasSuffix(FieldAbbreviation, v))
}

// AbbreviationIsNil applies the IsNil predicate on the "abbreviation" field.
func AbbreviationIsNil() predicate.Contractor {
	return predicate.Contractor(sql.FieldIsNull(FieldAbbreviation))
}

// AbbreviationNotNil applies the NotNil predicate on the "abbreviation" field.
func AbbreviationNotNil() predicate.Contractor {
	return predicate.Contractor(sql.FieldNotNull(FieldAbbreviation))
}

// AbbreviationEqualFold applies the EqualFold predicate on the "abbreviation" field.
func AbbreviationEqualFold(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEqualFold(FieldAbbreviation, v))
}

// AbbreviationContainsFold applies the ContainsFold predicate on the "abbreviation" field.
func AbbreviationContainsFold(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldContainsFold(FieldAbbreviation, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Contractor {
	return predicate.Contractor(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Contractor {
	return predicate.Contractor(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldContainsFold(FieldType, v))
}

// TradeEQ applies the EQ predicate on the "trade" field.
func TradeEQ(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldTrade, v))
}

// TradeNEQ applies the NEQ predicate on the "trade" field.
func TradeNEQ(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldNEQ(FieldTrade, v))
}

// TradeIn applies the In predicate on the "trade" field.
func TradeIn(vs ...string) predicate.Contractor {
	return predicate.Contractor(sql.FieldIn(FieldTrade, vs...))
}

// TradeNotIn applies the NotIn predicate on the "trade" field.
func TradeNotIn(vs ...string) predicate.Contractor {
	return predicate.Contractor(sql.FieldNotIn(FieldTrade, vs...))
}

// TradeGT applies the GT predicate on the "trade" field.
func TradeGT(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldGT(FieldTrade, v))
}

// TradeGTE applies the GTE predicate on the "trade" field.
func TradeGTE(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldGTE(FieldTrade, v))
}

// TradeLT applies the LT predicate on the "trade" field.
func TradeLT(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldLT(FieldTrade, v))
}

// TradeLTE applies the LTE predicate on the "trade" field.
func TradeLTE(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldLTE(FieldTrade, v))
}

// TradeContains applies the Contains predicate on the "trade" field.
func TradeContains(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldContains(FieldTrade, v))
}

// TradeHasPrefix applies the HasPrefix predicate on the "trade" field.
func TradeHasPrefix(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldHasPrefix(FieldTrade, v))
}

// TradeHasSuffix applies the HasSuffix predicate on the "trade" field.
func TradeHasSuffix(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldHasSuffix(FieldTrade, v))
}

// TradeIsNil applies the IsNil predicate on the "trade" field.
func TradeIsNil() predicate.Contractor {
	return predicate.Contractor(sql.FieldIsNull(FieldTrade))
}

// TradeNotNil applies the NotNil predicate on the "trade" field.
func TradeNotNil() predicate.Contractor {
	return predicate.Contractor(sql.FieldNotNull(FieldTrade))
}

// TradeEqualFold applies the EqualFold predicate on the "trade" field.
func TradeEqualFold(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEqualFold(FieldTrade, v))
}

// TradeContainsFold applies the ContainsFold predicate on the "trade" field.
func TradeContainsFold(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldContainsFold(FieldTrade, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Contractor {
	return predicate.Contractor(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Contractor {
	return predicate.Contractor(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Contractor {
	return predicate.Contractor(sql.FieldContainsFold(FieldStatus, v))
}

// SortOrderEQ applies the EQ predicate on the "sort_order" field.
func SortOrderEQ(v int) predicate.Contractor {
	return predicate.Contractor(sql.FieldEQ(FieldSortOrder, v))
}

// SortOrderNEQ applies the NEQ predicate on the "sort_order" field.
func SortOrderNEQ(v int) predicate.Contractor {
	return predicate.Contractor(sql.FieldNEQ(FieldSortOrder, v))
}

// SortOrderIn applies the In predicate on the "sort_order" field.
func SortOrderIn(vs ...int) predicate.Contractor {
	return predicate.Contractor(sql.FieldIn(FieldSortOrder, vs...))
}

// SortOrderNotIn applies the NotIn predicate on the "sort_order" field.
func SortOrderNotIn(vs ...int) predicate.Contractor {
	return predicate.Contractor(sql.FieldNotIn(FieldSortOrder, vs...))
}

// SortOrderGT applies the GT predicate on the "sort_order" field.
func SortOrderGT(v int) predicate.Contractor {
	return predicate.Contractor(sql.FieldGT(FieldSortOrder, v))
}

// SortOrderGTE applies the GTE predicate on the "sort_order" field.
func SortOrderGTE(v int) predicate.Contractor {
	return predicate.Contractor(sql.FieldGTE(FieldSortOrder, v))
}

// SortOrderLT applies the LT predicate on the "sort_order" field.
func SortOrderLT(v int) predicate.Contractor {
	return predicate.Contractor(sql.FieldLT(FieldSortOrder, v))
}

// SortOrderLTE applies the LTE predicate on the "sort_order" field.
func SortOrderLTE(v int) predicate.Contractor {
	return predicate.Contractor(sql.FieldLTE(FieldSortOrder, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Contractor {
	return predicate.Contractor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Contractor {
	return predicate.Contractor(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contractor) predicate.Contractor {
	return predicate.Contractor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contractor) predicate.Contractor {
	return predicate.Contractor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contractor) predicate.Contractor {
	return predicate.Contractor(sql.NotPredicates(p))
}
