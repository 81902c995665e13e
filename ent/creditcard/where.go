// Code generated by ent, DO NOT EDIT.

package creditcard

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/pocketwise/pocketwise/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldUserID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldUpdatedBy, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldName, v))
}

// ClosingDay applies equality check predicate on the "closing_day" field. It's identical to ClosingDayEQ.
func ClosingDay(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldClosingDay, v))
}

// DueDay applies equality check predicate on the "due_day" field. It's identical to DueDayEQ.
func DueDay(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldDueDay, v))
}

// CreditLimit applies equality check predicate on the "credit_limit" field. It's identical to CreditLimitEQ.
func CreditLimit(v decimal.Decimal) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldCreditLimit, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldContainsFold(FieldName, v))
}

// ClosingDayEQ applies the EQ predicate on the "closing_day" field.
func ClosingDayEQ(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldClosingDay, v))
}

// ClosingDayNEQ applies the NEQ predicate on the "closing_day" field.
func ClosingDayNEQ(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNEQ(FieldClosingDay, v))
}

// ClosingDayIn applies the In predicate on the "closing_day" field.
func ClosingDayIn(vs ...int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIn(FieldClosingDay, vs...))
}

// ClosingDayNotIn applies the NotIn predicate on the "closing_day" field.
func ClosingDayNotIn(vs ...int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotIn(FieldClosingDay, vs...))
}

// ClosingDayGT applies the GT predicate on the "closing_day" field.
func ClosingDayGT(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGT(FieldClosingDay, v))
}

// ClosingDayGTE applies the GTE predicate on the "closing_day" field.
func ClosingDayGTE(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGTE(FieldClosingDay, v))
}

// ClosingDayLT applies the LT predicate on the "closing_day" field.
func ClosingDayLT(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLT(FieldClosingDay, v))
}

// ClosingDayLTE applies the LTE predicate on the "closing_day" field.
func ClosingDayLTE(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLTE(FieldClosingDay, v))
}

// DueDayEQ applies the EQ predicate on the "due_day" field.
func DueDayEQ(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldDueDay, v))
}

// DueDayNEQ applies the NEQ predicate on the "due_day" field.
func DueDayNEQ(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNEQ(FieldDueDay, v))
}

// DueDayIn applies the In predicate on the "due_day" field.
func DueDayIn(vs ...int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIn(FieldDueDay, vs...))
}

// DueDayNotIn applies the NotIn predicate on the "due_day" field.
func DueDayNotIn(vs ...int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotIn(FieldDueDay, vs...))
}

// DueDayGT applies the GT predicate on the "due_day" field.
func DueDayGT(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGT(FieldDueDay, v))
}

// DueDayGTE applies the GTE predicate on the "due_day" field.
func DueDayGTE(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGTE(FieldDueDay, v))
}

// DueDayLT applies the LT predicate on the "due_day" field.
func DueDayLT(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLT(FieldDueDay, v))
}

// DueDayLTE applies the LTE predicate on the "due_day" field.
func DueDayLTE(v int) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLTE(FieldDueDay, v))
}

// CreditLimitEQ applies the EQ predicate on the "credit_limit" field.
func CreditLimitEQ(v decimal.Decimal) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldEQ(FieldCreditLimit, v))
}

// CreditLimitNEQ applies the NEQ predicate on the "credit_limit" field.
func CreditLimitNEQ(v decimal.Decimal) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNEQ(FieldCreditLimit, v))
}

// CreditLimitIn applies the In predicate on the "credit_limit" field.
func CreditLimitIn(vs ...decimal.Decimal) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldIn(FieldCreditLimit, vs...))
}

// CreditLimitNotIn applies the NotIn predicate on the "credit_limit" field.
func CreditLimitNotIn(vs ...decimal.Decimal) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldNotIn(FieldCreditLimit, vs...))
}

// CreditLimitGT applies the GT predicate on the "credit_limit" field.
func CreditLimitGT(v decimal.Decimal) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGT(FieldCreditLimit, v))
}

// CreditLimitGTE applies the GTE predicate on the "credit_limit" field.
func CreditLimitGTE(v decimal.Decimal) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldGTE(FieldCreditLimit, v))
}

// CreditLimitLT applies the LT predicate on the "credit_limit" field.
func CreditLimitLT(v decimal.Decimal) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLT(FieldCreditLimit, v))
}

// CreditLimitLTE applies the LTE predicate on the "credit_limit" field.
func CreditLimitLTE(v decimal.Decimal) predicate.CreditCard {
	return predicate.CreditCard(sql.FieldLTE(FieldCreditLimit, v))
}

// HasCreditBills applies the HasEdge predicate on the "credit_bills" edge.
func HasCreditBills() predicate.CreditCard {
	return predicate.CreditCard(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CreditBillsTable, CreditBillsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditBillsWith applies the HasEdge predicate on the "credit_bills" edge with a given conditions (other predicates).
func HasCreditBillsWith(preds ...predicate.CreditBill) predicate.CreditCard {
	return predicate.CreditCard(func(s *sql.Selector) {
		step := newCreditBillsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCreditExpenses applies the HasEdge predicate on the "credit_expenses" edge.
func HasCreditExpenses() predicate.CreditCard {
	return predicate.CreditCard(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CreditExpensesTable, CreditExpensesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditExpensesWith applies the HasEdge predicate on the "credit_expenses" edge with a given conditions (other predicates).
func HasCreditExpensesWith(preds ...predicate.CreditExpense) predicate.CreditCard {
	return predicate.CreditCard(func(s *sql.Selector) {
		step := newCreditExpensesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCreditIncomes applies the HasEdge predicate on the "credit_incomes" edge.
func HasCreditIncomes() predicate.CreditCard {
	return predicate.CreditCard(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CreditIncomesTable, CreditIncomesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditIncomesWith applies the HasEdge predicate on the "credit_incomes" edge with a given conditions (other predicates).
func HasCreditIncomesWith(preds ...predicate.CreditIncome) predicate.CreditCard {
	return predicate.CreditCard(func(s *sql.Selector) {
		step := newCreditIncomesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRefundEvents applies the HasEdge predicate on the "refund_events" edge.
func HasRefundEvents() predicate.CreditCard {
	return predicate.CreditCard(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RefundEventsTable, RefundEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRefundEventsWith applies the HasEdge predicate on the "refund_events" edge with a given conditions (other predicates).
func HasRefundEventsWith(preds ...predicate.RefundEvent) predicate.CreditCard {
	return predicate.CreditCard(func(s *sql.Selector) {
		step := newRefundEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreditCard) predicate.CreditCard {
	return predicate.CreditCard(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreditCard) predicate.CreditCard {
	return predicate.CreditCard(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreditCard) predicate.CreditCard {
	return predicate.CreditCard(sql.NotPredicates(p))
}
