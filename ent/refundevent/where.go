// Code generated by ent, DO NOT EDIT.

package refundevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent/predicate"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldUserID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldUpdatedBy, v))
}

// CreditExpenseID applies equality check predicate on the "credit_expense_id" field. It's identical to CreditExpenseIDEQ.
func CreditExpenseID(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldCreditExpenseID, v))
}

// CreditCardID applies equality check predicate on the "credit_card_id" field. It's identical to CreditCardIDEQ.
func CreditCardID(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldCreditCardID, v))
}

// RefundType applies equality check predicate on the "refund_type" field. It's identical to RefundTypeEQ.
func RefundType(v types.RefundType) predicate.RefundEvent {
	vc := string(v)
	return predicate.RefundEvent(sql.FieldEQ(FieldRefundType, vc))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v decimal.Decimal) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldAmount, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldSequence, v))
}

// InstallmentNumbers applies equality check predicate on the "installment_numbers" field. It's identical to InstallmentNumbersEQ.
func InstallmentNumbers(v pq.Int64Array) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldInstallmentNumbers, v))
}

// CreditBills applies equality check predicate on the "credit_bills" field. It's identical to CreditBillsEQ.
func CreditBills(v pq.StringArray) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldCreditBills, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// CreditExpenseIDEQ applies the EQ predicate on the "credit_expense_id" field.
func CreditExpenseIDEQ(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldCreditExpenseID, v))
}

// CreditExpenseIDNEQ applies the NEQ predicate on the "credit_expense_id" field.
func CreditExpenseIDNEQ(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldCreditExpenseID, v))
}

// CreditExpenseIDIn applies the In predicate on the "credit_expense_id" field.
func CreditExpenseIDIn(vs ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldCreditExpenseID, vs...))
}

// CreditExpenseIDNotIn applies the NotIn predicate on the "credit_expense_id" field.
func CreditExpenseIDNotIn(vs ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldCreditExpenseID, vs...))
}

// CreditExpenseIDGT applies the GT predicate on the "credit_expense_id" field.
func CreditExpenseIDGT(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldCreditExpenseID, v))
}

// CreditExpenseIDGTE applies the GTE predicate on the "credit_expense_id" field.
func CreditExpenseIDGTE(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldCreditExpenseID, v))
}

// CreditExpenseIDLT applies the LT predicate on the "credit_expense_id" field.
func CreditExpenseIDLT(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldCreditExpenseID, v))
}

// CreditExpenseIDLTE applies the LTE predicate on the "credit_expense_id" field.
func CreditExpenseIDLTE(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldCreditExpenseID, v))
}

// CreditExpenseIDContains applies the Contains predicate on the "credit_expense_id" field.
func CreditExpenseIDContains(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContains(FieldCreditExpenseID, v))
}

// CreditExpenseIDHasPrefix applies the HasPrefix predicate on the "credit_expense_id" field.
func CreditExpenseIDHasPrefix(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldHasPrefix(FieldCreditExpenseID, v))
}

// CreditExpenseIDHasSuffix applies the HasSuffix predicate on the "credit_expense_id" field.
func CreditExpenseIDHasSuffix(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldHasSuffix(FieldCreditExpenseID, v))
}

// CreditExpenseIDEqualFold applies the EqualFold predicate on the "credit_expense_id" field.
func CreditExpenseIDEqualFold(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEqualFold(FieldCreditExpenseID, v))
}

// CreditExpenseIDContainsFold applies the ContainsFold predicate on the "credit_expense_id" field.
func CreditExpenseIDContainsFold(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContainsFold(FieldCreditExpenseID, v))
}

// CreditCardIDEQ applies the EQ predicate on the "credit_card_id" field.
func CreditCardIDEQ(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldCreditCardID, v))
}

// CreditCardIDNEQ applies the NEQ predicate on the "credit_card_id" field.
func CreditCardIDNEQ(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldCreditCardID, v))
}

// CreditCardIDIn applies the In predicate on the "credit_card_id" field.
func CreditCardIDIn(vs ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldCreditCardID, vs...))
}

// CreditCardIDNotIn applies the NotIn predicate on the "credit_card_id" field.
func CreditCardIDNotIn(vs ...string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldCreditCardID, vs...))
}

// CreditCardIDGT applies the GT predicate on the "credit_card_id" field.
func CreditCardIDGT(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldCreditCardID, v))
}

// CreditCardIDGTE applies the GTE predicate on the "credit_card_id" field.
func CreditCardIDGTE(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldCreditCardID, v))
}

// CreditCardIDLT applies the LT predicate on the "credit_card_id" field.
func CreditCardIDLT(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldCreditCardID, v))
}

// CreditCardIDLTE applies the LTE predicate on the "credit_card_id" field.
func CreditCardIDLTE(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldCreditCardID, v))
}

// CreditCardIDContains applies the Contains predicate on the "credit_card_id" field.
func CreditCardIDContains(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContains(FieldCreditCardID, v))
}

// CreditCardIDHasPrefix applies the HasPrefix predicate on the "credit_card_id" field.
func CreditCardIDHasPrefix(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldHasPrefix(FieldCreditCardID, v))
}

// CreditCardIDHasSuffix applies the HasSuffix predicate on the "credit_card_id" field.
func CreditCardIDHasSuffix(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldHasSuffix(FieldCreditCardID, v))
}

// CreditCardIDEqualFold applies the EqualFold predicate on the "credit_card_id" field.
func CreditCardIDEqualFold(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEqualFold(FieldCreditCardID, v))
}

// CreditCardIDContainsFold applies the ContainsFold predicate on the "credit_card_id" field.
func CreditCardIDContainsFold(v string) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldContainsFold(FieldCreditCardID, v))
}

// RefundTypeEQ applies the EQ predicate on the "refund_type" field.
func RefundTypeEQ(v types.RefundType) predicate.RefundEvent {
	vc := string(v)
	return predicate.RefundEvent(sql.FieldEQ(FieldRefundType, vc))
}

// RefundTypeNEQ applies the NEQ predicate on the "refund_type" field.
func RefundTypeNEQ(v types.RefundType) predicate.RefundEvent {
	vc := string(v)
	return predicate.RefundEvent(sql.FieldNEQ(FieldRefundType, vc))
}

// RefundTypeIn applies the In predicate on the "refund_type" field.
func RefundTypeIn(vs ...types.RefundType) predicate.RefundEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.RefundEvent(sql.FieldIn(FieldRefundType, v...))
}

// RefundTypeNotIn applies the NotIn predicate on the "refund_type" field.
func RefundTypeNotIn(vs ...types.RefundType) predicate.RefundEvent {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.RefundEvent(sql.FieldNotIn(FieldRefundType, v...))
}

// RefundTypeGT applies the GT predicate on the "refund_type" field.
func RefundTypeGT(v types.RefundType) predicate.RefundEvent {
	vc := string(v)
	return predicate.RefundEvent(sql.FieldGT(FieldRefundType, vc))
}

// RefundTypeGTE applies the GTE predicate on the "refund_type" field.
func RefundTypeGTE(v types.RefundType) predicate.RefundEvent {
	vc := string(v)
	return predicate.RefundEvent(sql.FieldGTE(FieldRefundType, vc))
}

// RefundTypeLT applies the LT predicate on the "refund_type" field.
func RefundTypeLT(v types.RefundType) predicate.RefundEvent {
	vc := string(v)
	return predicate.RefundEvent(sql.FieldLT(FieldRefundType, vc))
}

// RefundTypeLTE applies the LTE predicate on the "refund_type" field.
func RefundTypeLTE(v types.RefundType) predicate.RefundEvent {
	vc := string(v)
	return predicate.RefundEvent(sql.FieldLTE(FieldRefundType, vc))
}

// RefundTypeContains applies the Contains predicate on the "refund_type" field.
func RefundTypeContains(v types.RefundType) predicate.RefundEvent {
	vc := string(v)
	return predicate.RefundEvent(sql.FieldContains(FieldRefundType, vc))
}

// RefundTypeHasPrefix applies the HasPrefix predicate on the "refund_type" field.
func RefundTypeHasPrefix(v types.RefundType) predicate.RefundEvent {
	vc := string(v)
	return predicate.RefundEvent(sql.FieldHasPrefix(FieldRefundType, vc))
}

// RefundTypeHasSuffix applies the HasSuffix predicate on the "refund_type" field.
func RefundTypeHasSuffix(v types.RefundType) predicate.RefundEvent {
	vc := string(v)
	return predicate.RefundEvent(sql.FieldHasSuffix(FieldRefundType, vc))
}

// RefundTypeEqualFold applies the EqualFold predicate on the "refund_type" field.
func RefundTypeEqualFold(v types.RefundType) predicate.RefundEvent {
	vc := string(v)
	return predicate.RefundEvent(sql.FieldEqualFold(FieldRefundType, vc))
}

// RefundTypeContainsFold applies the ContainsFold predicate on the "refund_type" field.
func RefundTypeContainsFold(v types.RefundType) predicate.RefundEvent {
	vc := string(v)
	return predicate.RefundEvent(sql.FieldContainsFold(FieldRefundType, vc))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v decimal.Decimal) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v decimal.Decimal) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...decimal.Decimal) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...decimal.Decimal) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v decimal.Decimal) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v decimal.Decimal) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v decimal.Decimal) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v decimal.Decimal) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldAmount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldSequence, v))
}

// InstallmentNumbersEQ applies the EQ predicate on the "installment_numbers" field.
func InstallmentNumbersEQ(v pq.Int64Array) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldInstallmentNumbers, v))
}

// InstallmentNumbersNEQ applies the NEQ predicate on the "installment_numbers" field.
func InstallmentNumbersNEQ(v pq.Int64Array) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldInstallmentNumbers, v))
}

// InstallmentNumbersIn applies the In predicate on the "installment_numbers" field.
func InstallmentNumbersIn(vs ...pq.Int64Array) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldInstallmentNumbers, vs...))
}

// InstallmentNumbersNotIn applies the NotIn predicate on the "installment_numbers" field.
func InstallmentNumbersNotIn(vs ...pq.Int64Array) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldInstallmentNumbers, vs...))
}

// InstallmentNumbersGT applies the GT predicate on the "installment_numbers" field.
func InstallmentNumbersGT(v pq.Int64Array) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldInstallmentNumbers, v))
}

// InstallmentNumbersGTE applies the GTE predicate on the "installment_numbers" field.
func InstallmentNumbersGTE(v pq.Int64Array) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldInstallmentNumbers, v))
}

// InstallmentNumbersLT applies the LT predicate on the "installment_numbers" field.
func InstallmentNumbersLT(v pq.Int64Array) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldInstallmentNumbers, v))
}

// InstallmentNumbersLTE applies the LTE predicate on the "installment_numbers" field.
func InstallmentNumbersLTE(v pq.Int64Array) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldInstallmentNumbers, v))
}

// CreditBillsEQ applies the EQ predicate on the "credit_bills" field.
func CreditBillsEQ(v pq.StringArray) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldEQ(FieldCreditBills, v))
}

// CreditBillsNEQ applies the NEQ predicate on the "credit_bills" field.
func CreditBillsNEQ(v pq.StringArray) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNEQ(FieldCreditBills, v))
}

// CreditBillsIn applies the In predicate on the "credit_bills" field.
func CreditBillsIn(vs ...pq.StringArray) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldIn(FieldCreditBills, vs...))
}

// CreditBillsNotIn applies the NotIn predicate on the "credit_bills" field.
func CreditBillsNotIn(vs ...pq.StringArray) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldNotIn(FieldCreditBills, vs...))
}

// CreditBillsGT applies the GT predicate on the "credit_bills" field.
func CreditBillsGT(v pq.StringArray) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGT(FieldCreditBills, v))
}

// CreditBillsGTE applies the GTE predicate on the "credit_bills" field.
func CreditBillsGTE(v pq.StringArray) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldGTE(FieldCreditBills, v))
}

// CreditBillsLT applies the LT predicate on the "credit_bills" field.
func CreditBillsLT(v pq.StringArray) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLT(FieldCreditBills, v))
}

// CreditBillsLTE applies the LTE predicate on the "credit_bills" field.
func CreditBillsLTE(v pq.StringArray) predicate.RefundEvent {
	return predicate.RefundEvent(sql.FieldLTE(FieldCreditBills, v))
}

// HasCreditExpense applies the HasEdge predicate on the "credit_expense" edge.
func HasCreditExpense() predicate.RefundEvent {
	return predicate.RefundEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreditExpenseTable, CreditExpenseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditExpenseWith applies the HasEdge predicate on the "credit_expense" edge with a given conditions (other predicates).
func HasCreditExpenseWith(preds ...predicate.CreditExpense) predicate.RefundEvent {
	return predicate.RefundEvent(func(s *sql.Selector) {
		step := newCreditExpenseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCreditCard applies the HasEdge predicate on the "credit_card" edge.
func HasCreditCard() predicate.RefundEvent {
	return predicate.RefundEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreditCardTable, CreditCardColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditCardWith applies the HasEdge predicate on the "credit_card" edge with a given conditions (other predicates).
func HasCreditCardWith(preds ...predicate.CreditCard) predicate.RefundEvent {
	return predicate.RefundEvent(func(s *sql.Selector) {
		step := newCreditCardStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RefundEvent) predicate.RefundEvent {
	return predicate.RefundEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RefundEvent) predicate.RefundEvent {
	return predicate.RefundEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RefundEvent) predicate.RefundEvent {
	return predicate.RefundEvent(sql.NotPredicates(p))
}
