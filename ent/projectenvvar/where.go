// Code generated by ent, DO NOT EDIT.

package projectenvvar

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agnox-io/agnox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldOrgID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldProjectID, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldKey, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldValue, v))
}

// IsSecret applies equality check predicate on the "is_secret" field. It's identical to IsSecretEQ.
func IsSecret(v bool) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldIsSecret, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldContainsFold(FieldOrgID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldContainsFold(FieldProjectID, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldContainsFold(FieldKey, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLTE(FieldValue, v))
}

// ValueContains applies the Contains predicate on the "value" field.
func ValueContains(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldContains(FieldValue, v))
}

// ValueHasPrefix applies the HasPrefix predicate on the "value" field.
func ValueHasPrefix(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldHasPrefix(FieldValue, v))
}

// ValueHasSuffix applies the HasSuffix predicate on the "value" field.
func ValueHasSuffix(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldHasSuffix(FieldValue, v))
}

// ValueIsNil applies the IsNil predicate on the "value" field.
func ValueIsNil() predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldIsNull(FieldValue))
}

// ValueNotNil applies the NotNil predicate on the "value" field.
func ValueNotNil() predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNotNull(FieldValue))
}

// ValueEqualFold applies the EqualFold predicate on the "value" field.
func ValueEqualFold(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEqualFold(FieldValue, v))
}

// ValueContainsFold applies the ContainsFold predicate on the "value" field.
func ValueContainsFold(v string) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldContainsFold(FieldValue, v))
}

// EncryptedIsNil applies the IsNil predicate on the "encrypted" field.
func EncryptedIsNil() predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldIsNull(FieldEncrypted))
}

// EncryptedNotNil applies the NotNil predicate on the "encrypted" field.
func EncryptedNotNil() predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNotNull(FieldEncrypted))
}

// IsSecretEQ applies the EQ predicate on the "is_secret" field.
func IsSecretEQ(v bool) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldIsSecret, v))
}

// IsSecretNEQ applies the NEQ predicate on the "is_secret" field.
func IsSecretNEQ(v bool) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNEQ(FieldIsSecret, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProjectEnvVar) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProjectEnvVar) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProjectEnvVar) predicate.ProjectEnvVar {
	return predicate.ProjectEnvVar(sql.NotPredicates(p))
}
