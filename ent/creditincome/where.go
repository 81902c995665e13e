// Code generated by ent, DO NOT EDIT.

package creditincome

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/pocketwise/pocketwise/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldUserID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldUpdatedBy, v))
}

// CreditCardID applies equality check predicate on the "credit_card_id" field. It's identical to CreditCardIDEQ.
func CreditCardID(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldCreditCardID, v))
}

// CreditBillID applies equality check predicate on the "credit_bill_id" field. It's identical to CreditBillIDEQ.
func CreditBillID(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldCreditBillID, v))
}

// CreditExpenseID applies equality check predicate on the "credit_expense_id" field. It's identical to CreditExpenseIDEQ.
func CreditExpenseID(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldCreditExpenseID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldDescription, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v decimal.Decimal) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldAmount, v))
}

// InstallmentNumber applies equality check predicate on the "installment_number" field. It's identical to InstallmentNumberEQ.
func InstallmentNumber(v int) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldInstallmentNumber, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldDate, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// CreditCardIDEQ applies the EQ predicate on the "credit_card_id" field.
func CreditCardIDEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldCreditCardID, v))
}

// CreditCardIDNEQ applies the NEQ predicate on the "credit_card_id" field.
func CreditCardIDNEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldCreditCardID, v))
}

// CreditCardIDIn applies the In predicate on the "credit_card_id" field.
func CreditCardIDIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldCreditCardID, vs...))
}

// CreditCardIDNotIn applies the NotIn predicate on the "credit_card_id" field.
func CreditCardIDNotIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldCreditCardID, vs...))
}

// CreditCardIDGT applies the GT predicate on the "credit_card_id" field.
func CreditCardIDGT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldCreditCardID, v))
}

// CreditCardIDGTE applies the GTE predicate on the "credit_card_id" field.
func CreditCardIDGTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldCreditCardID, v))
}

// CreditCardIDLT applies the LT predicate on the "credit_card_id" field.
func CreditCardIDLT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldCreditCardID, v))
}

// CreditCardIDLTE applies the LTE predicate on the "credit_card_id" field.
func CreditCardIDLTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldCreditCardID, v))
}

// CreditCardIDContains applies the Contains predicate on the "credit_card_id" field.
func CreditCardIDContains(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContains(FieldCreditCardID, v))
}

// CreditCardIDHasPrefix applies the HasPrefix predicate on the "credit_card_id" field.
func CreditCardIDHasPrefix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasPrefix(FieldCreditCardID, v))
}

// CreditCardIDHasSuffix applies the HasSuffix predicate on the "credit_card_id" field.
func CreditCardIDHasSuffix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasSuffix(FieldCreditCardID, v))
}

// CreditCardIDEqualFold applies the EqualFold predicate on the "credit_card_id" field.
func CreditCardIDEqualFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEqualFold(FieldCreditCardID, v))
}

// CreditCardIDContainsFold applies the ContainsFold predicate on the "credit_card_id" field.
func CreditCardIDContainsFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContainsFold(FieldCreditCardID, v))
}

// CreditBillIDEQ applies the EQ predicate on the "credit_bill_id" field.
func CreditBillIDEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldCreditBillID, v))
}

// CreditBillIDNEQ applies the NEQ predicate on the "credit_bill_id" field.
func CreditBillIDNEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldCreditBillID, v))
}

// CreditBillIDIn applies the In predicate on the "credit_bill_id" field.
func CreditBillIDIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldCreditBillID, vs...))
}

// CreditBillIDNotIn applies the NotIn predicate on the "credit_bill_id" field.
func CreditBillIDNotIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldCreditBillID, vs...))
}

// CreditBillIDGT applies the GT predicate on the "credit_bill_id" field.
func CreditBillIDGT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldCreditBillID, v))
}

// CreditBillIDGTE applies the GTE predicate on the "credit_bill_id" field.
func CreditBillIDGTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldCreditBillID, v))
}

// CreditBillIDLT applies the LT predicate on the "credit_bill_id" field.
func CreditBillIDLT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldCreditBillID, v))
}

// CreditBillIDLTE applies the LTE predicate on the "credit_bill_id" field.
func CreditBillIDLTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldCreditBillID, v))
}

// CreditBillIDContains applies the Contains predicate on the "credit_bill_id" field.
func CreditBillIDContains(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContains(FieldCreditBillID, v))
}

// CreditBillIDHasPrefix applies the HasPrefix predicate on the "credit_bill_id" field.
func CreditBillIDHasPrefix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasPrefix(FieldCreditBillID, v))
}

// CreditBillIDHasSuffix applies the HasSuffix predicate on the "credit_bill_id" field.
func CreditBillIDHasSuffix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasSuffix(FieldCreditBillID, v))
}

// CreditBillIDEqualFold applies the EqualFold predicate on the "credit_bill_id" field.
func CreditBillIDEqualFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEqualFold(FieldCreditBillID, v))
}

// CreditBillIDContainsFold applies the ContainsFold predicate on the "credit_bill_id" field.
func CreditBillIDContainsFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContainsFold(FieldCreditBillID, v))
}

// CreditExpenseIDEQ applies the EQ predicate on the "credit_expense_id" field.
func CreditExpenseIDEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldCreditExpenseID, v))
}

// CreditExpenseIDNEQ applies the NEQ predicate on the "credit_expense_id" field.
func CreditExpenseIDNEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldCreditExpenseID, v))
}

// CreditExpenseIDIn applies the In predicate on the "credit_expense_id" field.
func CreditExpenseIDIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldCreditExpenseID, vs...))
}

// CreditExpenseIDNotIn applies the NotIn predicate on the "credit_expense_id" field.
func CreditExpenseIDNotIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldCreditExpenseID, vs...))
}

// CreditExpenseIDGT applies the GT predicate on the "credit_expense_id" field.
func CreditExpenseIDGT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldCreditExpenseID, v))
}

// CreditExpenseIDGTE applies the GTE predicate on the "credit_expense_id" field.
func CreditExpenseIDGTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldCreditExpenseID, v))
}

// CreditExpenseIDLT applies the LT predicate on the "credit_expense_id" field.
func CreditExpenseIDLT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldCreditExpenseID, v))
}

// CreditExpenseIDLTE applies the LTE predicate on the "credit_expense_id" field.
func CreditExpenseIDLTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldCreditExpenseID, v))
}

// CreditExpenseIDContains applies the Contains predicate on the "credit_expense_id" field.
func CreditExpenseIDContains(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContains(FieldCreditExpenseID, v))
}

// CreditExpenseIDHasPrefix applies the HasPrefix predicate on the "credit_expense_id" field.
func CreditExpenseIDHasPrefix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasPrefix(FieldCreditExpenseID, v))
}

// CreditExpenseIDHasSuffix applies the HasSuffix predicate on the "credit_expense_id" field.
func CreditExpenseIDHasSuffix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasSuffix(FieldCreditExpenseID, v))
}

// CreditExpenseIDEqualFold applies the EqualFold predicate on the "credit_expense_id" field.
func CreditExpenseIDEqualFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEqualFold(FieldCreditExpenseID, v))
}

// CreditExpenseIDContainsFold applies the ContainsFold predicate on the "credit_expense_id" field.
func CreditExpenseIDContainsFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContainsFold(FieldCreditExpenseID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldContainsFold(FieldDescription, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v decimal.Decimal) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v decimal.Decimal) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...decimal.Decimal) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...decimal.Decimal) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v decimal.Decimal) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v decimal.Decimal) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v decimal.Decimal) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v decimal.Decimal) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldAmount, v))
}

// InstallmentNumberEQ applies the EQ predicate on the "installment_number" field.
func InstallmentNumberEQ(v int) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldInstallmentNumber, v))
}

// InstallmentNumberNEQ applies the NEQ predicate on the "installment_number" field.
func InstallmentNumberNEQ(v int) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldInstallmentNumber, v))
}

// InstallmentNumberIn applies the In predicate on the "installment_number" field.
func InstallmentNumberIn(vs ...int) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldInstallmentNumber, vs...))
}

// InstallmentNumberNotIn applies the NotIn predicate on the "installment_number" field.
func InstallmentNumberNotIn(vs ...int) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldInstallmentNumber, vs...))
}

// InstallmentNumberGT applies the GT predicate on the "installment_number" field.
func InstallmentNumberGT(v int) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldInstallmentNumber, v))
}

// InstallmentNumberGTE applies the GTE predicate on the "installment_number" field.
func InstallmentNumberGTE(v int) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldInstallmentNumber, v))
}

// InstallmentNumberLT applies the LT predicate on the "installment_number" field.
func InstallmentNumberLT(v int) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldInstallmentNumber, v))
}

// InstallmentNumberLTE applies the LTE predicate on the "installment_number" field.
func InstallmentNumberLTE(v int) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldInstallmentNumber, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.CreditIncome {
	return predicate.CreditIncome(sql.FieldLTE(FieldDate, v))
}

// HasCreditCard applies the HasEdge predicate on the "credit_card" edge.
func HasCreditCard() predicate.CreditIncome {
	return predicate.CreditIncome(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreditCardTable, CreditCardColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditCardWith applies the HasEdge predicate on the "credit_card" edge with a given conditions (other predicates).
func HasCreditCardWith(preds ...predicate.CreditCard) predicate.CreditIncome {
	return predicate.CreditIncome(func(s *sql.Selector) {
		step := newCreditCardStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCreditBill applies the HasEdge predicate on the "credit_bill" edge.
func HasCreditBill() predicate.CreditIncome {
	return predicate.CreditIncome(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreditBillTable, CreditBillColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditBillWith applies the HasEdge predicate on the "credit_bill" edge with a given conditions (other predicates).
func HasCreditBillWith(preds ...predicate.CreditBill) predicate.CreditIncome {
	return predicate.CreditIncome(func(s *sql.Selector) {
		step := newCreditBillStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCreditExpense applies the HasEdge predicate on the "credit_expense" edge.
func HasCreditExpense() predicate.CreditIncome {
	return predicate.CreditIncome(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreditExpenseTable, CreditExpenseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditExpenseWith applies the HasEdge predicate on the "credit_expense" edge with a given conditions (other predicates).
func HasCreditExpenseWith(preds ...predicate.CreditExpense) predicate.CreditIncome {
	return predicate.CreditIncome(func(s *sql.Selector) {
		step := newCreditExpenseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreditIncome) predicate.CreditIncome {
	return predicate.CreditIncome(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreditIncome) predicate.CreditIncome {
	return predicate.CreditIncome(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreditIncome) predicate.CreditIncome {
	return predicate.CreditIncome(sql.NotPredicates(p))
}
