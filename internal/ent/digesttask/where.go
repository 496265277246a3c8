// Code generated by ent, DO NOT EDIT.

package digesttask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/ko-digest-bot/internal/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldUpdateTime, v))
}

// BundleCategoryID applies equality check predicate on the "bundle_category_id" field. It's identical to BundleCategoryIDEQ.
func BundleCategoryID(v uuid.UUID) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldBundleCategoryID, v))
}

// SelectFrom applies equality check predicate on the "select_from" field. It's identical to SelectFromEQ.
func SelectFrom(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldSelectFrom, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldErrorMessage, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLTE(FieldUpdateTime, v))
}

// BundleCategoryIDEQ applies the EQ predicate on the "bundle_category_id" field.
func BundleCategoryIDEQ(v uuid.UUID) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldBundleCategoryID, v))
}

// BundleCategoryIDNEQ applies the NEQ predicate on the "bundle_category_id" field.
func BundleCategoryIDNEQ(v uuid.UUID) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNEQ(FieldBundleCategoryID, v))
}

// BundleCategoryIDIn applies the In predicate on the "bundle_category_id" field.
func BundleCategoryIDIn(vs ...uuid.UUID) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldIn(FieldBundleCategoryID, vs...))
}

// BundleCategoryIDNotIn applies the NotIn predicate on the "bundle_category_id" field.
func BundleCategoryIDNotIn(vs ...uuid.UUID) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNotIn(FieldBundleCategoryID, vs...))
}

// BundleCategoryIDGT applies the GT predicate on the "bundle_category_id" field.
func BundleCategoryIDGT(v uuid.UUID) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGT(FieldBundleCategoryID, v))
}

// BundleCategoryIDGTE applies the GTE predicate on the "bundle_category_id" field.
func BundleCategoryIDGTE(v uuid.UUID) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGTE(FieldBundleCategoryID, v))
}

// BundleCategoryIDLT applies the LT predicate on the "bundle_category_id" field.
func BundleCategoryIDLT(v uuid.UUID) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLT(FieldBundleCategoryID, v))
}

// BundleCategoryIDLTE applies the LTE predicate on the "bundle_category_id" field.
func BundleCategoryIDLTE(v uuid.UUID) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLTE(FieldBundleCategoryID, v))
}

// SelectFromEQ applies the EQ predicate on the "select_from" field.
func SelectFromEQ(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldSelectFrom, v))
}

// SelectFromNEQ applies the NEQ predicate on the "select_from" field.
func SelectFromNEQ(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNEQ(FieldSelectFrom, v))
}

// SelectFromIn applies the In predicate on the "select_from" field.
func SelectFromIn(vs ...time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldIn(FieldSelectFrom, vs...))
}

// SelectFromNotIn applies the NotIn predicate on the "select_from" field.
func SelectFromNotIn(vs ...time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNotIn(FieldSelectFrom, vs...))
}

// SelectFromGT applies the GT predicate on the "select_from" field.
func SelectFromGT(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGT(FieldSelectFrom, v))
}

// SelectFromGTE applies the GTE predicate on the "select_from" field.
func SelectFromGTE(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGTE(FieldSelectFrom, v))
}

// SelectFromLT applies the LT predicate on the "select_from" field.
func SelectFromLT(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLT(FieldSelectFrom, v))
}

// SelectFromLTE applies the LTE predicate on the "select_from" field.
func SelectFromLTE(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLTE(FieldSelectFrom, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNotIn(FieldStatus, vs...))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.DigestTask {
	return predicate.DigestTask(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DigestTask {
	return predicate.DigestTask(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DigestTask {
	return predicate.DigestTask(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DigestTask {
	return predicate.DigestTask(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DigestTask) predicate.DigestTask {
	return predicate.DigestTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DigestTask) predicate.DigestTask {
	return predicate.DigestTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DigestTask) predicate.DigestTask {
	return predicate.DigestTask(sql.NotPredicates(p))
}
