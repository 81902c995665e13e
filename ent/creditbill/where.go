// Code generated by ent, DO NOT EDIT.

package creditbill

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/pocketwise/pocketwise/ent/predicate"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldUserID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldUpdatedBy, v))
}

// CreditCardID applies equality check predicate on the "credit_card_id" field. It's identical to CreditCardIDEQ.
func CreditCardID(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldCreditCardID, v))
}

// ClosingDate applies equality check predicate on the "closing_date" field. It's identical to ClosingDateEQ.
func ClosingDate(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldClosingDate, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldDueDate, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldTotalAmount, v))
}

// PaidAmount applies equality check predicate on the "paid_amount" field. It's identical to PaidAmountEQ.
func PaidAmount(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldPaidAmount, v))
}

// BillStatus applies equality check predicate on the "bill_status" field. It's identical to BillStatusEQ.
func BillStatus(v types.CreditBillStatus) predicate.CreditBill {
	vc := string(v)
	return predicate.CreditBill(sql.FieldEQ(FieldBillStatus, vc))
}

// PaidAt applies equality check predicate on the "paid_at" field. It's identical to PaidAtEQ.
func PaidAt(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldPaidAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// CreditCardIDEQ applies the EQ predicate on the "credit_card_id" field.
func CreditCardIDEQ(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldCreditCardID, v))
}

// CreditCardIDNEQ applies the NEQ predicate on the "credit_card_id" field.
func CreditCardIDNEQ(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldCreditCardID, v))
}

// CreditCardIDIn applies the In predicate on the "credit_card_id" field.
func CreditCardIDIn(vs ...string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldCreditCardID, vs...))
}

// CreditCardIDNotIn applies the NotIn predicate on the "credit_card_id" field.
func CreditCardIDNotIn(vs ...string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldCreditCardID, vs...))
}

// CreditCardIDGT applies the GT predicate on the "credit_card_id" field.
func CreditCardIDGT(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldCreditCardID, v))
}

// CreditCardIDGTE applies the GTE predicate on the "credit_card_id" field.
func CreditCardIDGTE(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldCreditCardID, v))
}

// CreditCardIDLT applies the LT predicate on the "credit_card_id" field.
func CreditCardIDLT(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldCreditCardID, v))
}

// CreditCardIDLTE applies the LTE predicate on the "credit_card_id" field.
func CreditCardIDLTE(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldCreditCardID, v))
}

// CreditCardIDContains applies the Contains predicate on the "credit_card_id" field.
func CreditCardIDContains(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldContains(FieldCreditCardID, v))
}

// CreditCardIDHasPrefix applies the HasPrefix predicate on the "credit_card_id" field.
func CreditCardIDHasPrefix(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldHasPrefix(FieldCreditCardID, v))
}

// CreditCardIDHasSuffix applies the HasSuffix predicate on the "credit_card_id" field.
func CreditCardIDHasSuffix(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldHasSuffix(FieldCreditCardID, v))
}

// CreditCardIDEqualFold applies the EqualFold predicate on the "credit_card_id" field.
func CreditCardIDEqualFold(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEqualFold(FieldCreditCardID, v))
}

// CreditCardIDContainsFold applies the ContainsFold predicate on the "credit_card_id" field.
func CreditCardIDContainsFold(v string) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldContainsFold(FieldCreditCardID, v))
}

// ClosingDateEQ applies the EQ predicate on the "closing_date" field.
func ClosingDateEQ(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldClosingDate, v))
}

// ClosingDateNEQ applies the NEQ predicate on the "closing_date" field.
func ClosingDateNEQ(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldClosingDate, v))
}

// ClosingDateIn applies the In predicate on the "closing_date" field.
func ClosingDateIn(vs ...time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldClosingDate, vs...))
}

// ClosingDateNotIn applies the NotIn predicate on the "closing_date" field.
func ClosingDateNotIn(vs ...time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldClosingDate, vs...))
}

// ClosingDateGT applies the GT predicate on the "closing_date" field.
func ClosingDateGT(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldClosingDate, v))
}

// ClosingDateGTE applies the GTE predicate on the "closing_date" field.
func ClosingDateGTE(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldClosingDate, v))
}

// ClosingDateLT applies the LT predicate on the "closing_date" field.
func ClosingDateLT(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldClosingDate, v))
}

// ClosingDateLTE applies the LTE predicate on the "closing_date" field.
func ClosingDateLTE(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldClosingDate, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldDueDate, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldTotalAmount, v))
}

// PaidAmountEQ applies the EQ predicate on the "paid_amount" field.
func PaidAmountEQ(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldPaidAmount, v))
}

// PaidAmountNEQ applies the NEQ predicate on the "paid_amount" field.
func PaidAmountNEQ(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldPaidAmount, v))
}

// PaidAmountIn applies the In predicate on the "paid_amount" field.
func PaidAmountIn(vs ...decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldPaidAmount, vs...))
}

// PaidAmountNotIn applies the NotIn predicate on the "paid_amount" field.
func PaidAmountNotIn(vs ...decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldPaidAmount, vs...))
}

// PaidAmountGT applies the GT predicate on the "paid_amount" field.
func PaidAmountGT(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldPaidAmount, v))
}

// PaidAmountGTE applies the GTE predicate on the "paid_amount" field.
func PaidAmountGTE(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldPaidAmount, v))
}

// PaidAmountLT applies the LT predicate on the "paid_amount" field.
func PaidAmountLT(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldPaidAmount, v))
}

// PaidAmountLTE applies the LTE predicate on the "paid_amount" field.
func PaidAmountLTE(v decimal.Decimal) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldPaidAmount, v))
}

// BillStatusEQ applies the EQ predicate on the "bill_status" field.
func BillStatusEQ(v types.CreditBillStatus) predicate.CreditBill {
	vc := string(v)
	return predicate.CreditBill(sql.FieldEQ(FieldBillStatus, vc))
}

// BillStatusNEQ applies the NEQ predicate on the "bill_status" field.
func BillStatusNEQ(v types.CreditBillStatus) predicate.CreditBill {
	vc := string(v)
	return predicate.CreditBill(sql.FieldNEQ(FieldBillStatus, vc))
}

// BillStatusIn applies the In predicate on the "bill_status" field.
func BillStatusIn(vs ...types.CreditBillStatus) predicate.CreditBill {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.CreditBill(sql.FieldIn(FieldBillStatus, v...))
}

// BillStatusNotIn applies the NotIn predicate on the "bill_status" field.
func BillStatusNotIn(vs ...types.CreditBillStatus) predicate.CreditBill {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.CreditBill(sql.FieldNotIn(FieldBillStatus, v...))
}

// BillStatusGT applies the GT predicate on the "bill_status" field.
func BillStatusGT(v types.CreditBillStatus) predicate.CreditBill {
	vc := string(v)
	return predicate.CreditBill(sql.FieldGT(FieldBillStatus, vc))
}

// BillStatusGTE applies the GTE predicate on the "bill_status" field.
func BillStatusGTE(v types.CreditBillStatus) predicate.CreditBill {
	vc := string(v)
	return predicate.CreditBill(sql.FieldGTE(FieldBillStatus, vc))
}

// BillStatusLT applies the LT predicate on the "bill_status" field.
func BillStatusLT(v types.CreditBillStatus) predicate.CreditBill {
	vc := string(v)
	return predicate.CreditBill(sql.FieldLT(FieldBillStatus, vc))
}

// BillStatusLTE applies the LTE predicate on the "bill_status" field.
func BillStatusLTE(v types.CreditBillStatus) predicate.CreditBill {
	vc := string(v)
	return predicate.CreditBill(sql.FieldLTE(FieldBillStatus, vc))
}

// BillStatusContains applies the Contains predicate on the "bill_status" field.
func BillStatusContains(v types.CreditBillStatus) predicate.CreditBill {
	vc := string(v)
	return predicate.CreditBill(sql.FieldContains(FieldBillStatus, vc))
}

// BillStatusHasPrefix applies the HasPrefix predicate on the "bill_status" field.
func BillStatusHasPrefix(v types.CreditBillStatus) predicate.CreditBill {
	vc := string(v)
	return predicate.CreditBill(sql.FieldHasPrefix(FieldBillStatus, vc))
}

// BillStatusHasSuffix applies the HasSuffix predicate on the "bill_status" field.
func BillStatusHasSuffix(v types.CreditBillStatus) predicate.CreditBill {
	vc := string(v)
	return predicate.CreditBill(sql.FieldHasSuffix(FieldBillStatus, vc))
}

// BillStatusEqualFold applies the EqualFold predicate on the "bill_status" field.
func BillStatusEqualFold(v types.CreditBillStatus) predicate.CreditBill {
	vc := string(v)
	return predicate.CreditBill(sql.FieldEqualFold(FieldBillStatus, vc))
}

// BillStatusContainsFold applies the ContainsFold predicate on the "bill_status" field.
func BillStatusContainsFold(v types.CreditBillStatus) predicate.CreditBill {
	vc := string(v)
	return predicate.CreditBill(sql.FieldContainsFold(FieldBillStatus, vc))
}

// PaidAtEQ applies the EQ predicate on the "paid_at" field.
func PaidAtEQ(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldEQ(FieldPaidAt, v))
}

// PaidAtNEQ applies the NEQ predicate on the "paid_at" field.
func PaidAtNEQ(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNEQ(FieldPaidAt, v))
}

// PaidAtIn applies the In predicate on the "paid_at" field.
func PaidAtIn(vs ...time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIn(FieldPaidAt, vs...))
}

// PaidAtNotIn applies the NotIn predicate on the "paid_at" field.
func PaidAtNotIn(vs ...time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotIn(FieldPaidAt, vs...))
}

// PaidAtGT applies the GT predicate on the "paid_at" field.
func PaidAtGT(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGT(FieldPaidAt, v))
}

// PaidAtGTE applies the GTE predicate on the "paid_at" field.
func PaidAtGTE(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldGTE(FieldPaidAt, v))
}

// PaidAtLT applies the LT predicate on the "paid_at" field.
func PaidAtLT(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLT(FieldPaidAt, v))
}

// PaidAtLTE applies the LTE predicate on the "paid_at" field.
func PaidAtLTE(v time.Time) predicate.CreditBill {
	return predicate.CreditBill(sql.FieldLTE(FieldPaidAt, v))
}

// PaidAtIsNil applies the IsNil predicate on the "paid_at" field.
func PaidAtIsNil() predicate.CreditBill {
	return predicate.CreditBill(sql.FieldIsNull(FieldPaidAt))
}

// PaidAtNotNil applies the NotNil predicate on the "paid_at" field.
func PaidAtNotNil() predicate.CreditBill {
	return predicate.CreditBill(sql.FieldNotNull(FieldPaidAt))
}

// HasCreditCard applies the HasEdge predicate on the "credit_card" edge.
func HasCreditCard() predicate.CreditBill {
	return predicate.CreditBill(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreditCardTable, CreditCardColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditCardWith applies the HasEdge predicate on the "credit_card" edge with a given conditions (other predicates).
func HasCreditCardWith(preds ...predicate.CreditCard) predicate.CreditBill {
	return predicate.CreditBill(func(s *sql.Selector) {
		step := newCreditCardStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCreditExpenses applies the HasEdge predicate on the "credit_expenses" edge.
func HasCreditExpenses() predicate.CreditBill {
	return predicate.CreditBill(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CreditExpensesTable, CreditExpensesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditExpensesWith applies the HasEdge predicate on the "credit_expenses" edge with a given conditions (other predicates).
func HasCreditExpensesWith(preds ...predicate.CreditExpense) predicate.CreditBill {
	return predicate.CreditBill(func(s *sql.Selector) {
		step := newCreditExpensesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCreditIncomes applies the HasEdge predicate on the "credit_incomes" edge.
func HasCreditIncomes() predicate.CreditBill {
	return predicate.CreditBill(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CreditIncomesTable, CreditIncomesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditIncomesWith applies the HasEdge predicate on the "credit_incomes" edge with a given conditions (other predicates).
func HasCreditIncomesWith(preds ...predicate.CreditIncome) predicate.CreditBill {
	return predicate.CreditBill(func(s *sql.Selector) {
		step := newCreditIncomesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreditBill) predicate.CreditBill {
	return predicate.CreditBill(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreditBill) predicate.CreditBill {
	return predicate.CreditBill(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreditBill) predicate.CreditBill {
	return predicate.CreditBill(sql.NotPredicates(p))
}
