// Code generated by ent, DO NOT EDIT.

package creditexpense

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
func ID(id string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldUserID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldUpdatedBy, v))
}

// CreditCardID applies equality check predicate on the "credit_card_id" field. It's identical to CreditCardIDEQ.
func CreditCardID(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldCreditCardID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldDescription, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v decimal.Decimal) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldAmount, v))
}

// PurchaseDate applies equality check predicate on the "purchase_date" field. It's identical to PurchaseDateEQ.
func PurchaseDate(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldPurchaseDate, v))
}

// Installments applies equality check predicate on the "installments" field. It's identical to InstallmentsEQ.
func Installments(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldInstallments, v))
}

// InstallmentNumber applies equality check predicate on the "installment_number" field. It's identical to InstallmentNumberEQ.
func InstallmentNumber(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldInstallmentNumber, v))
}

// ExpenseType applies equality check predicate on the "expense_type" field. It's identical to ExpenseTypeEQ.
func ExpenseType(v types.CreditExpenseType) predicate.CreditExpense {
	vc := string(v)
	return predicate.CreditExpense(sql.FieldEQ(FieldExpenseType, vc))
}

// ParentExpenseID applies equality check predicate on the "parent_expense_id" field. It's identical to ParentExpenseIDEQ.
func ParentExpenseID(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldParentExpenseID, v))
}

// CreditBillID applies equality check predicate on the "credit_bill_id" field. It's identical to CreditBillIDEQ.
func CreditBillID(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldCreditBillID, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldDueDate, v))
}

// Tags applies equality check predicate on the "tags" field. It's identical to TagsEQ.
func Tags(v pq.StringArray) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldTags, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContainsFold(FieldUserID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// CreditCardIDEQ applies the EQ predicate on the "credit_card_id" field.
func CreditCardIDEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldCreditCardID, v))
}

// CreditCardIDNEQ applies the NEQ predicate on the "credit_card_id" field.
func CreditCardIDNEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldCreditCardID, v))
}

// CreditCardIDIn applies the In predicate on the "credit_card_id" field.
func CreditCardIDIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldCreditCardID, vs...))
}

// CreditCardIDNotIn applies the NotIn predicate on the "credit_card_id" field.
func CreditCardIDNotIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldCreditCardID, vs...))
}

// CreditCardIDGT applies the GT predicate on the "credit_card_id" field.
func CreditCardIDGT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldCreditCardID, v))
}

// CreditCardIDGTE applies the GTE predicate on the "credit_card_id" field.
func CreditCardIDGTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldCreditCardID, v))
}

// CreditCardIDLT applies the LT predicate on the "credit_card_id" field.
func CreditCardIDLT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldCreditCardID, v))
}

// CreditCardIDLTE applies the LTE predicate on the "credit_card_id" field.
func CreditCardIDLTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldCreditCardID, v))
}

// CreditCardIDContains applies the Contains predicate on the "credit_card_id" field.
func CreditCardIDContains(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContains(FieldCreditCardID, v))
}

// CreditCardIDHasPrefix applies the HasPrefix predicate on the "credit_card_id" field.
func CreditCardIDHasPrefix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasPrefix(FieldCreditCardID, v))
}

// CreditCardIDHasSuffix applies the HasSuffix predicate on the "credit_card_id" field.
func CreditCardIDHasSuffix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasSuffix(FieldCreditCardID, v))
}

// CreditCardIDEqualFold applies the EqualFold predicate on the "credit_card_id" field.
func CreditCardIDEqualFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEqualFold(FieldCreditCardID, v))
}

// CreditCardIDContainsFold applies the ContainsFold predicate on the "credit_card_id" field.
func CreditCardIDContainsFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContainsFold(FieldCreditCardID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContainsFold(FieldDescription, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v decimal.Decimal) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v decimal.Decimal) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...decimal.Decimal) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...decimal.Decimal) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v decimal.Decimal) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v decimal.Decimal) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v decimal.Decimal) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v decimal.Decimal) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldAmount, v))
}

// PurchaseDateEQ applies the EQ predicate on the "purchase_date" field.
func PurchaseDateEQ(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldPurchaseDate, v))
}

// PurchaseDateNEQ applies the NEQ predicate on the "purchase_date" field.
func PurchaseDateNEQ(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldPurchaseDate, v))
}

// PurchaseDateIn applies the In predicate on the "purchase_date" field.
func PurchaseDateIn(vs ...time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldPurchaseDate, vs...))
}

// PurchaseDateNotIn applies the NotIn predicate on the "purchase_date" field.
func PurchaseDateNotIn(vs ...time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldPurchaseDate, vs...))
}

// PurchaseDateGT applies the GT predicate on the "purchase_date" field.
func PurchaseDateGT(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldPurchaseDate, v))
}

// PurchaseDateGTE applies the GTE predicate on the "purchase_date" field.
func PurchaseDateGTE(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldPurchaseDate, v))
}

// PurchaseDateLT applies the LT predicate on the "purchase_date" field.
func PurchaseDateLT(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldPurchaseDate, v))
}

// PurchaseDateLTE applies the LTE predicate on the "purchase_date" field.
func PurchaseDateLTE(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldPurchaseDate, v))
}

// InstallmentsEQ applies the EQ predicate on the "installments" field.
func InstallmentsEQ(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldInstallments, v))
}

// InstallmentsNEQ applies the NEQ predicate on the "installments" field.
func InstallmentsNEQ(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldInstallments, v))
}

// InstallmentsIn applies the In predicate on the "installments" field.
func InstallmentsIn(vs ...int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldInstallments, vs...))
}

// InstallmentsNotIn applies the NotIn predicate on the "installments" field.
func InstallmentsNotIn(vs ...int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldInstallments, vs...))
}

// InstallmentsGT applies the GT predicate on the "installments" field.
func InstallmentsGT(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldInstallments, v))
}

// InstallmentsGTE applies the GTE predicate on the "installments" field.
func InstallmentsGTE(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldInstallments, v))
}

// InstallmentsLT applies the LT predicate on the "installments" field.
func InstallmentsLT(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldInstallments, v))
}

// InstallmentsLTE applies the LTE predicate on the "installments" field.
func InstallmentsLTE(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldInstallments, v))
}

// InstallmentNumberEQ applies the EQ predicate on the "installment_number" field.
func InstallmentNumberEQ(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldInstallmentNumber, v))
}

// InstallmentNumberNEQ applies the NEQ predicate on the "installment_number" field.
func InstallmentNumberNEQ(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldInstallmentNumber, v))
}

// InstallmentNumberIn applies the In predicate on the "installment_number" field.
func InstallmentNumberIn(vs ...int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldInstallmentNumber, vs...))
}

// InstallmentNumberNotIn applies the NotIn predicate on the "installment_number" field.
func InstallmentNumberNotIn(vs ...int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldInstallmentNumber, vs...))
}

// InstallmentNumberGT applies the GT predicate on the "installment_number" field.
func InstallmentNumberGT(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldInstallmentNumber, v))
}

// InstallmentNumberGTE applies the GTE predicate on the "installment_number" field.
func InstallmentNumberGTE(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldInstallmentNumber, v))
}

// InstallmentNumberLT applies the LT predicate on the "installment_number" field.
func InstallmentNumberLT(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldInstallmentNumber, v))
}

// InstallmentNumberLTE applies the LTE predicate on the "installment_number" field.
func InstallmentNumberLTE(v int) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldInstallmentNumber, v))
}

// ExpenseTypeEQ applies the EQ predicate on the "expense_type" field.
func ExpenseTypeEQ(v types.CreditExpenseType) predicate.CreditExpense {
	vc := string(v)
	return predicate.CreditExpense(sql.FieldEQ(FieldExpenseType, vc))
}

// ExpenseTypeNEQ applies the NEQ predicate on the "expense_type" field.
func ExpenseTypeNEQ(v types.CreditExpenseType) predicate.CreditExpense {
	vc := string(v)
	return predicate.CreditExpense(sql.FieldNEQ(FieldExpenseType, vc))
}

// ExpenseTypeIn applies the In predicate on the "expense_type" field.
func ExpenseTypeIn(vs ...types.CreditExpenseType) predicate.CreditExpense {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.CreditExpense(sql.FieldIn(FieldExpenseType, v...))
}

// ExpenseTypeNotIn applies the NotIn predicate on the "expense_type" field.
func ExpenseTypeNotIn(vs ...types.CreditExpenseType) predicate.CreditExpense {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = string(vs[i])
	}
	return predicate.CreditExpense(sql.FieldNotIn(FieldExpenseType, v...))
}

// ExpenseTypeGT applies the GT predicate on the "expense_type" field.
func ExpenseTypeGT(v types.CreditExpenseType) predicate.CreditExpense {
	vc := string(v)
	return predicate.CreditExpense(sql.FieldGT(FieldExpenseType, vc))
}

// ExpenseTypeGTE applies the GTE predicate on the "expense_type" field.
func ExpenseTypeGTE(v types.CreditExpenseType) predicate.CreditExpense {
	vc := string(v)
	return predicate.CreditExpense(sql.FieldGTE(FieldExpenseType, vc))
}

// ExpenseTypeLT applies the LT predicate on the "expense_type" field.
func ExpenseTypeLT(v types.CreditExpenseType) predicate.CreditExpense {
	vc := string(v)
	return predicate.CreditExpense(sql.FieldLT(FieldExpenseType, vc))
}

// ExpenseTypeLTE applies the LTE predicate on the "expense_type" field.
func ExpenseTypeLTE(v types.CreditExpenseType) predicate.CreditExpense {
	vc := string(v)
	return predicate.CreditExpense(sql.FieldLTE(FieldExpenseType, vc))
}

// ExpenseTypeContains applies the Contains predicate on the "expense_type" field.
func ExpenseTypeContains(v types.CreditExpenseType) predicate.CreditExpense {
	vc := string(v)
	return predicate.CreditExpense(sql.FieldContains(FieldExpenseType, vc))
}

// ExpenseTypeHasPrefix applies the HasPrefix predicate on the "expense_type" field.
func ExpenseTypeHasPrefix(v types.CreditExpenseType) predicate.CreditExpense {
	vc := string(v)
	return predicate.CreditExpense(sql.FieldHasPrefix(FieldExpenseType, vc))
}

// ExpenseTypeHasSuffix applies the HasSuffix predicate on the "expense_type" field.
func ExpenseTypeHasSuffix(v types.CreditExpenseType) predicate.CreditExpense {
	vc := string(v)
	return predicate.CreditExpense(sql.FieldHasSuffix(FieldExpenseType, vc))
}

// ExpenseTypeEqualFold applies the EqualFold predicate on the "expense_type" field.
func ExpenseTypeEqualFold(v types.CreditExpenseType) predicate.CreditExpense {
	vc := string(v)
	return predicate.CreditExpense(sql.FieldEqualFold(FieldExpenseType, vc))
}

// ExpenseTypeContainsFold applies the ContainsFold predicate on the "expense_type" field.
func ExpenseTypeContainsFold(v types.CreditExpenseType) predicate.CreditExpense {
	vc := string(v)
	return predicate.CreditExpense(sql.FieldContainsFold(FieldExpenseType, vc))
}

// ParentExpenseIDEQ applies the EQ predicate on the "parent_expense_id" field.
func ParentExpenseIDEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldParentExpenseID, v))
}

// ParentExpenseIDNEQ applies the NEQ predicate on the "parent_expense_id" field.
func ParentExpenseIDNEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldParentExpenseID, v))
}

// ParentExpenseIDIn applies the In predicate on the "parent_expense_id" field.
func ParentExpenseIDIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldParentExpenseID, vs...))
}

// ParentExpenseIDNotIn applies the NotIn predicate on the "parent_expense_id" field.
func ParentExpenseIDNotIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldParentExpenseID, vs...))
}

// ParentExpenseIDGT applies the GT predicate on the "parent_expense_id" field.
func ParentExpenseIDGT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldParentExpenseID, v))
}

// ParentExpenseIDGTE applies the GTE predicate on the "parent_expense_id" field.
func ParentExpenseIDGTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldParentExpenseID, v))
}

// ParentExpenseIDLT applies the LT predicate on the "parent_expense_id" field.
func ParentExpenseIDLT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldParentExpenseID, v))
}

// ParentExpenseIDLTE applies the LTE predicate on the "parent_expense_id" field.
func ParentExpenseIDLTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldParentExpenseID, v))
}

// ParentExpenseIDContains applies the Contains predicate on the "parent_expense_id" field.
func ParentExpenseIDContains(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContains(FieldParentExpenseID, v))
}

// ParentExpenseIDHasPrefix applies the HasPrefix predicate on the "parent_expense_id" field.
func ParentExpenseIDHasPrefix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasPrefix(FieldParentExpenseID, v))
}

// ParentExpenseIDHasSuffix applies the HasSuffix predicate on the "parent_expense_id" field.
func ParentExpenseIDHasSuffix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasSuffix(FieldParentExpenseID, v))
}

// ParentExpenseIDIsNil applies the IsNil predicate on the "parent_expense_id" field.
func ParentExpenseIDIsNil() predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIsNull(FieldParentExpenseID))
}

// ParentExpenseIDNotNil applies the NotNil predicate on the "parent_expense_id" field.
func ParentExpenseIDNotNil() predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotNull(FieldParentExpenseID))
}

// ParentExpenseIDEqualFold applies the EqualFold predicate on the "parent_expense_id" field.
func ParentExpenseIDEqualFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEqualFold(FieldParentExpenseID, v))
}

// ParentExpenseIDContainsFold applies the ContainsFold predicate on the "parent_expense_id" field.
func ParentExpenseIDContainsFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContainsFold(FieldParentExpenseID, v))
}

// CreditBillIDEQ applies the EQ predicate on the "credit_bill_id" field.
func CreditBillIDEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldCreditBillID, v))
}

// CreditBillIDNEQ applies the NEQ predicate on the "credit_bill_id" field.
func CreditBillIDNEQ(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldCreditBillID, v))
}

// CreditBillIDIn applies the In predicate on the "credit_bill_id" field.
func CreditBillIDIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldCreditBillID, vs...))
}

// CreditBillIDNotIn applies the NotIn predicate on the "credit_bill_id" field.
func CreditBillIDNotIn(vs ...string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldCreditBillID, vs...))
}

// CreditBillIDGT applies the GT predicate on the "credit_bill_id" field.
func CreditBillIDGT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldCreditBillID, v))
}

// CreditBillIDGTE applies the GTE predicate on the "credit_bill_id" field.
func CreditBillIDGTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldCreditBillID, v))
}

// CreditBillIDLT applies the LT predicate on the "credit_bill_id" field.
func CreditBillIDLT(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldCreditBillID, v))
}

// CreditBillIDLTE applies the LTE predicate on the "credit_bill_id" field.
func CreditBillIDLTE(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldCreditBillID, v))
}

// CreditBillIDContains applies the Contains predicate on the "credit_bill_id" field.
func CreditBillIDContains(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContains(FieldCreditBillID, v))
}

// CreditBillIDHasPrefix applies the HasPrefix predicate on the "credit_bill_id" field.
func CreditBillIDHasPrefix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasPrefix(FieldCreditBillID, v))
}

// CreditBillIDHasSuffix applies the HasSuffix predicate on the "credit_bill_id" field.
func CreditBillIDHasSuffix(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldHasSuffix(FieldCreditBillID, v))
}

// CreditBillIDIsNil applies the IsNil predicate on the "credit_bill_id" field.
func CreditBillIDIsNil() predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIsNull(FieldCreditBillID))
}

// CreditBillIDNotNil applies the NotNil predicate on the "credit_bill_id" field.
func CreditBillIDNotNil() predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotNull(FieldCreditBillID))
}

// CreditBillIDEqualFold applies the EqualFold predicate on the "credit_bill_id" field.
func CreditBillIDEqualFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEqualFold(FieldCreditBillID, v))
}

// CreditBillIDContainsFold applies the ContainsFold predicate on the "credit_bill_id" field.
func CreditBillIDContainsFold(v string) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldContainsFold(FieldCreditBillID, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotNull(FieldDueDate))
}

// TagsEQ applies the EQ predicate on the "tags" field.
func TagsEQ(v pq.StringArray) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldEQ(FieldTags, v))
}

// TagsNEQ applies the NEQ predicate on the "tags" field.
func TagsNEQ(v pq.StringArray) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNEQ(FieldTags, v))
}

// TagsIn applies the In predicate on the "tags" field.
func TagsIn(vs ...pq.StringArray) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldIn(FieldTags, vs...))
}

// TagsNotIn applies the NotIn predicate on the "tags" field.
func TagsNotIn(vs ...pq.StringArray) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldNotIn(FieldTags, vs...))
}

// TagsGT applies the GT predicate on the "tags" field.
func TagsGT(v pq.StringArray) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGT(FieldTags, v))
}

// TagsGTE applies the GTE predicate on the "tags" field.
func TagsGTE(v pq.StringArray) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldGTE(FieldTags, v))
}

// TagsLT applies the LT predicate on the "tags" field.
func TagsLT(v pq.StringArray) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLT(FieldTags, v))
}

// TagsLTE applies the LTE predicate on the "tags" field.
func TagsLTE(v pq.StringArray) predicate.CreditExpense {
	return predicate.CreditExpense(sql.FieldLTE(FieldTags, v))
}

// HasCreditCard applies the HasEdge predicate on the "credit_card" edge.
func HasCreditCard() predicate.CreditExpense {
	return predicate.CreditExpense(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreditCardTable, CreditCardColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditCardWith applies the HasEdge predicate on the "credit_card" edge with a given conditions (other predicates).
func HasCreditCardWith(preds ...predicate.CreditCard) predicate.CreditExpense {
	return predicate.CreditExpense(func(s *sql.Selector) {
		step := newCreditCardStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.CreditExpense {
	return predicate.CreditExpense(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.CreditExpense) predicate.CreditExpense {
	return predicate.CreditExpense(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.CreditExpense {
	return predicate.CreditExpense(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.CreditExpense) predicate.CreditExpense {
	return predicate.CreditExpense(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCreditBill applies the HasEdge predicate on the "credit_bill" edge.
func HasCreditBill() predicate.CreditExpense {
	return predicate.CreditExpense(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreditBillTable, CreditBillColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditBillWith applies the HasEdge predicate on the "credit_bill" edge with a given conditions (other predicates).
func HasCreditBillWith(preds ...predicate.CreditBill) predicate.CreditExpense {
	return predicate.CreditExpense(func(s *sql.Selector) {
		step := newCreditBillStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCreditIncomes applies the HasEdge predicate on the "credit_incomes" edge.
func HasCreditIncomes() predicate.CreditExpense {
	return predicate.CreditExpense(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CreditIncomesTable, CreditIncomesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreditIncomesWith applies the HasEdge predicate on the "credit_incomes" edge with a given conditions (other predicates).
func HasCreditIncomesWith(preds ...predicate.CreditIncome) predicate.CreditExpense {
	return predicate.CreditExpense(func(s *sql.Selector) {
		step := newCreditIncomesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRefundEvents applies the HasEdge predicate on the "refund_events" edge.
func HasRefundEvents() predicate.CreditExpense {
	return predicate.CreditExpense(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RefundEventsTable, RefundEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRefundEventsWith applies the HasEdge predicate on the "refund_events" edge with a given conditions (other predicates).
func HasRefundEventsWith(preds ...predicate.RefundEvent) predicate.CreditExpense {
	return predicate.CreditExpense(func(s *sql.Selector) {
		step := newRefundEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreditExpense) predicate.CreditExpense {
	return predicate.CreditExpense(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreditExpense) predicate.CreditExpense {
	return predicate.CreditExpense(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreditExpense) predicate.CreditExpense {
	return predicate.CreditExpense(sql.NotPredicates(p))
}
