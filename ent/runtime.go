// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent/creditbill"
	"github.com/pocketwise/pocketwise/ent/creditcard"
	"github.com/pocketwise/pocketwise/ent/creditexpense"
	"github.com/pocketwise/pocketwise/ent/creditincome"
	"github.com/pocketwise/pocketwise/ent/refundevent"
	"github.com/pocketwise/pocketwise/ent/schema"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	creditbillMixin := schema.CreditBill{}.Mixin()
	creditbillMixinFields0 := creditbillMixin[0].Fields()
	_ = creditbillMixinFields0
	creditbillFields := schema.CreditBill{}.Fields()
	_ = creditbillFields
	// creditbillDescUserID is the schema descriptor for user_id field.
	creditbillDescUserID := creditbillMixinFields0[0].Descriptor()
	// creditbill.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	creditbill.UserIDValidator = creditbillDescUserID.Validators[0].(func(string) error)
	// creditbillDescStatus is the schema descriptor for status field.
	creditbillDescStatus := creditbillMixinFields0[1].Descriptor()
	// creditbill.DefaultStatus holds the default value on creation for the status field.
	creditbill.DefaultStatus = creditbillDescStatus.Default.(string)
	// creditbillDescCreatedAt is the schema descriptor for created_at field.
	creditbillDescCreatedAt := creditbillMixinFields0[2].Descriptor()
	// creditbill.DefaultCreatedAt holds the default value on creation for the created_at field.
	creditbill.DefaultCreatedAt = creditbillDescCreatedAt.Default.(func() time.Time)
	// creditbillDescUpdatedAt is the schema descriptor for updated_at field.
	creditbillDescUpdatedAt := creditbillMixinFields0[3].Descriptor()
	// creditbill.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	creditbill.DefaultUpdatedAt = creditbillDescUpdatedAt.Default.(func() time.Time)
	// creditbill.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	creditbill.UpdateDefaultUpdatedAt = creditbillDescUpdatedAt.UpdateDefault.(func() time.Time)
	// creditbillDescCreditCardID is the schema descriptor for credit_card_id field.
	creditbillDescCreditCardID := creditbillFields[1].Descriptor()
	// creditbill.CreditCardIDValidator is a validator for the "credit_card_id" field. It is called by the builders before save.
	creditbill.CreditCardIDValidator = creditbillDescCreditCardID.Validators[0].(func(string) error)
	// creditbillDescTotalAmount is the schema descriptor for total_amount field.
	creditbillDescTotalAmount := creditbillFields[4].Descriptor()
	// creditbill.DefaultTotalAmount holds the default value on creation for the total_amount field.
	creditbill.DefaultTotalAmount = creditbillDescTotalAmount.Default.(decimal.Decimal)
	// creditbillDescPaidAmount is the schema descriptor for paid_amount field.
	creditbillDescPaidAmount := creditbillFields[5].Descriptor()
	// creditbill.DefaultPaidAmount holds the default value on creation for the paid_amount field.
	creditbill.DefaultPaidAmount = creditbillDescPaidAmount.Default.(decimal.Decimal)
	// creditbillDescBillStatus is the schema descriptor for bill_status field.
	creditbillDescBillStatus := creditbillFields[6].Descriptor()
	// creditbill.DefaultBillStatus holds the default value on creation for the bill_status field.
	creditbill.DefaultBillStatus = types.CreditBillStatus(creditbillDescBillStatus.Default.(string))
	creditcardMixin := schema.CreditCard{}.Mixin()
	creditcardMixinFields0 := creditcardMixin[0].Fields()
	_ = creditcardMixinFields0
	creditcardFields := schema.CreditCard{}.Fields()
	_ = creditcardFields
	// creditcardDescUserID is the schema descriptor for user_id field.
	creditcardDescUserID := creditcardMixinFields0[0].Descriptor()
	// creditcard.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	creditcard.UserIDValidator = creditcardDescUserID.Validators[0].(func(string) error)
	// creditcardDescStatus is the schema descriptor for status field.
	creditcardDescStatus := creditcardMixinFields0[1].Descriptor()
	// creditcard.DefaultStatus holds the default value on creation for the status field.
	creditcard.DefaultStatus = creditcardDescStatus.Default.(string)
	// creditcardDescCreatedAt is the schema descriptor for created_at field.
	creditcardDescCreatedAt := creditcardMixinFields0[2].Descriptor()
	// creditcard.DefaultCreatedAt holds the default value on creation for the created_at field.
	creditcard.DefaultCreatedAt = creditcardDescCreatedAt.Default.(func() time.Time)
	// creditcardDescUpdatedAt is the schema descriptor for updated_at field.
	creditcardDescUpdatedAt := creditcardMixinFields0[3].Descriptor()
	// creditcard.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	creditcard.DefaultUpdatedAt = creditcardDescUpdatedAt.Default.(func() time.Time)
	// creditcard.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	creditcard.UpdateDefaultUpdatedAt = creditcardDescUpdatedAt.UpdateDefault.(func() time.Time)
	// creditcardDescName is the schema descriptor for name field.
	creditcardDescName := creditcardFields[1].Descriptor()
	// creditcard.NameValidator is a validator for the "name" field. It is called by the builders before save.
	creditcard.NameValidator = creditcardDescName.Validators[0].(func(string) error)
	// creditcardDescClosingDay is the schema descriptor for closing_day field.
	creditcardDescClosingDay := creditcardFields[2].Descriptor()
	// creditcard.ClosingDayValidator is a validator for the "closing_day" field. It is called by the builders before save.
	creditcard.ClosingDayValidator = creditcardDescClosingDay.Validators[0].(func(int) error)
	// creditcardDescDueDay is the schema descriptor for due_day field.
	creditcardDescDueDay := creditcardFields[3].Descriptor()
	// creditcard.DueDayValidator is a validator for the "due_day" field. It is called by the builders before save.
	creditcard.DueDayValidator = creditcardDescDueDay.Validators[0].(func(int) error)
	// creditcardDescCreditLimit is the schema descriptor for credit_limit field.
	creditcardDescCreditLimit := creditcardFields[4].Descriptor()
	// creditcard.DefaultCreditLimit holds the default value on creation for the credit_limit field.
	creditcard.DefaultCreditLimit = creditcardDescCreditLimit.Default.(decimal.Decimal)
	creditexpenseMixin := schema.CreditExpense{}.Mixin()
	creditexpenseMixinFields0 := creditexpenseMixin[0].Fields()
	_ = creditexpenseMixinFields0
	creditexpenseFields := schema.CreditExpense{}.Fields()
	_ = creditexpenseFields
	// creditexpenseDescUserID is the schema descriptor for user_id field.
	creditexpenseDescUserID := creditexpenseMixinFields0[0].Descriptor()
	// creditexpense.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	creditexpense.UserIDValidator = creditexpenseDescUserID.Validators[0].(func(string) error)
	// creditexpenseDescStatus is the schema descriptor for status field.
	creditexpenseDescStatus := creditexpenseMixinFields0[1].Descriptor()
	// creditexpense.DefaultStatus holds the default value on creation for the status field.
	creditexpense.DefaultStatus = creditexpenseDescStatus.Default.(string)
	// creditexpenseDescCreatedAt is the schema descriptor for created_at field.
	creditexpenseDescCreatedAt := creditexpenseMixinFields0[2].Descriptor()
	// creditexpense.DefaultCreatedAt holds the default value on creation for the created_at field.
	creditexpense.DefaultCreatedAt = creditexpenseDescCreatedAt.Default.(func() time.Time)
	// creditexpenseDescUpdatedAt is the schema descriptor for updated_at field.
	creditexpenseDescUpdatedAt := creditexpenseMixinFields0[3].Descriptor()
	// creditexpense.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	creditexpense.DefaultUpdatedAt = creditexpenseDescUpdatedAt.Default.(func() time.Time)
	// creditexpense.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	creditexpense.UpdateDefaultUpdatedAt = creditexpenseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// creditexpenseDescCreditCardID is the schema descriptor for credit_card_id field.
	creditexpenseDescCreditCardID := creditexpenseFields[1].Descriptor()
	// creditexpense.CreditCardIDValidator is a validator for the "credit_card_id" field. It is called by the builders before save.
	creditexpense.CreditCardIDValidator = creditexpenseDescCreditCardID.Validators[0].(func(string) error)
	// creditexpenseDescDescription is the schema descriptor for description field.
	creditexpenseDescDescription := creditexpenseFields[2].Descriptor()
	// creditexpense.DefaultDescription holds the default value on creation for the description field.
	creditexpense.DefaultDescription = creditexpenseDescDescription.Default.(string)
	// creditexpenseDescInstallments is the schema descriptor for installments field.
	creditexpenseDescInstallments := creditexpenseFields[5].Descriptor()
	// creditexpense.DefaultInstallments holds the default value on creation for the installments field.
	creditexpense.DefaultInstallments = creditexpenseDescInstallments.Default.(int)
	// creditexpenseDescInstallmentNumber is the schema descriptor for installment_number field.
	creditexpenseDescInstallmentNumber := creditexpenseFields[6].Descriptor()
	// creditexpense.DefaultInstallmentNumber holds the default value on creation for the installment_number field.
	creditexpense.DefaultInstallmentNumber = creditexpenseDescInstallmentNumber.Default.(int)
	// creditexpenseDescExpenseType is the schema descriptor for expense_type field.
	creditexpenseDescExpenseType := creditexpenseFields[7].Descriptor()
	// creditexpense.DefaultExpenseType holds the default value on creation for the expense_type field.
	creditexpense.DefaultExpenseType = types.CreditExpenseType(creditexpenseDescExpenseType.Default.(string))
	// creditexpenseDescTags is the schema descriptor for tags field.
	creditexpenseDescTags := creditexpenseFields[11].Descriptor()
	// creditexpense.DefaultTags holds the default value on creation for the tags field.
	creditexpense.DefaultTags = creditexpenseDescTags.Default.(pq.StringArray)
	creditincomeMixin := schema.CreditIncome{}.Mixin()
	creditincomeMixinFields0 := creditincomeMixin[0].Fields()
	_ = creditincomeMixinFields0
	creditincomeFields := schema.CreditIncome{}.Fields()
	_ = creditincomeFields
	// creditincomeDescUserID is the schema descriptor for user_id field.
	creditincomeDescUserID := creditincomeMixinFields0[0].Descriptor()
	// creditincome.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	creditincome.UserIDValidator = creditincomeDescUserID.Validators[0].(func(string) error)
	// creditincomeDescStatus is the schema descriptor for status field.
	creditincomeDescStatus := creditincomeMixinFields0[1].Descriptor()
	// creditincome.DefaultStatus holds the default value on creation for the status field.
	creditincome.DefaultStatus = creditincomeDescStatus.Default.(string)
	// creditincomeDescCreatedAt is the schema descriptor for created_at field.
	creditincomeDescCreatedAt := creditincomeMixinFields0[2].Descriptor()
	// creditincome.DefaultCreatedAt holds the default value on creation for the created_at field.
	creditincome.DefaultCreatedAt = creditincomeDescCreatedAt.Default.(func() time.Time)
	// creditincomeDescUpdatedAt is the schema descriptor for updated_at field.
	creditincomeDescUpdatedAt := creditincomeMixinFields0[3].Descriptor()
	// creditincome.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	creditincome.DefaultUpdatedAt = creditincomeDescUpdatedAt.Default.(func() time.Time)
	// creditincome.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	creditincome.UpdateDefaultUpdatedAt = creditincomeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// creditincomeDescCreditCardID is the schema descriptor for credit_card_id field.
	creditincomeDescCreditCardID := creditincomeFields[1].Descriptor()
	// creditincome.CreditCardIDValidator is a validator for the "credit_card_id" field. It is called by the builders before save.
	creditincome.CreditCardIDValidator = creditincomeDescCreditCardID.Validators[0].(func(string) error)
	// creditincomeDescCreditBillID is the schema descriptor for credit_bill_id field.
	creditincomeDescCreditBillID := creditincomeFields[2].Descriptor()
	// creditincome.CreditBillIDValidator is a validator for the "credit_bill_id" field. It is called by the builders before save.
	creditincome.CreditBillIDValidator = creditincomeDescCreditBillID.Validators[0].(func(string) error)
	// creditincomeDescCreditExpenseID is the schema descriptor for credit_expense_id field.
	creditincomeDescCreditExpenseID := creditincomeFields[3].Descriptor()
	// creditincome.CreditExpenseIDValidator is a validator for the "credit_expense_id" field. It is called by the builders before save.
	creditincome.CreditExpenseIDValidator = creditincomeDescCreditExpenseID.Validators[0].(func(string) error)
	// creditincomeDescDescription is the schema descriptor for description field.
	creditincomeDescDescription := creditincomeFields[4].Descriptor()
	// creditincome.DefaultDescription holds the default value on creation for the description field.
	creditincome.DefaultDescription = creditincomeDescDescription.Default.(string)
	// creditincomeDescInstallmentNumber is the schema descriptor for installment_number field.
	creditincomeDescInstallmentNumber := creditincomeFields[6].Descriptor()
	// creditincome.DefaultInstallmentNumber holds the default value on creation for the installment_number field.
	creditincome.DefaultInstallmentNumber = creditincomeDescInstallmentNumber.Default.(int)
	refundeventMixin := schema.RefundEvent{}.Mixin()
	refundeventMixinFields0 := refundeventMixin[0].Fields()
	_ = refundeventMixinFields0
	refundeventFields := schema.RefundEvent{}.Fields()
	_ = refundeventFields
	// refundeventDescUserID is the schema descriptor for user_id field.
	refundeventDescUserID := refundeventMixinFields0[0].Descriptor()
	// refundevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	refundevent.UserIDValidator = refundeventDescUserID.Validators[0].(func(string) error)
	// refundeventDescStatus is the schema descriptor for status field.
	refundeventDescStatus := refundeventMixinFields0[1].Descriptor()
	// refundevent.DefaultStatus holds the default value on creation for the status field.
	refundevent.DefaultStatus = refundeventDescStatus.Default.(string)
	// refundeventDescCreatedAt is the schema descriptor for created_at field.
	refundeventDescCreatedAt := refundeventMixinFields0[2].Descriptor()
	// refundevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	refundevent.DefaultCreatedAt = refundeventDescCreatedAt.Default.(func() time.Time)
	// refundeventDescUpdatedAt is the schema descriptor for updated_at field.
	refundeventDescUpdatedAt := refundeventMixinFields0[3].Descriptor()
	// refundevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	refundevent.DefaultUpdatedAt = refundeventDescUpdatedAt.Default.(func() time.Time)
	// refundevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	refundevent.UpdateDefaultUpdatedAt = refundeventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// refundeventDescCreditExpenseID is the schema descriptor for credit_expense_id field.
	refundeventDescCreditExpenseID := refundeventFields[1].Descriptor()
	// refundevent.CreditExpenseIDValidator is a validator for the "credit_expense_id" field. It is called by the builders before save.
	refundevent.CreditExpenseIDValidator = refundeventDescCreditExpenseID.Validators[0].(func(string) error)
	// refundeventDescCreditCardID is the schema descriptor for credit_card_id field.
	refundeventDescCreditCardID := refundeventFields[2].Descriptor()
	// refundevent.CreditCardIDValidator is a validator for the "credit_card_id" field. It is called by the builders before save.
	refundevent.CreditCardIDValidator = refundeventDescCreditCardID.Validators[0].(func(string) error)
	// refundeventDescSequence is the schema descriptor for sequence field.
	refundeventDescSequence := refundeventFields[5].Descriptor()
	// refundevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	refundevent.SequenceValidator = refundeventDescSequence.Validators[0].(func(int) error)
	// refundeventDescInstallmentNumbers is the schema descriptor for installment_numbers field.
	refundeventDescInstallmentNumbers := refundeventFields[6].Descriptor()
	// refundevent.DefaultInstallmentNumbers holds the default value on creation for the installment_numbers field.
	refundevent.DefaultInstallmentNumbers = refundeventDescInstallmentNumbers.Default.(pq.Int64Array)
	// refundeventDescCreditBills is the schema descriptor for credit_bills field.
	refundeventDescCreditBills := refundeventFields[7].Descriptor()
	// refundevent.DefaultCreditBills holds the default value on creation for the credit_bills field.
	refundevent.DefaultCreditBills = refundeventDescCreditBills.Default.(pq.StringArray)
}
