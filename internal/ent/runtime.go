// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fachebot/ko-digest-bot/internal/ent/bundle"
	"github.com/fachebot/ko-digest-bot/internal/ent/bundlecategory"
	"github.com/fachebot/ko-digest-bot/internal/ent/dailydose"
	"github.com/fachebot/ko-digest-bot/internal/ent/digestrun"
	"github.com/fachebot/ko-digest-bot/internal/ent/digesttask"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/fachebot/ko-digest-bot/internal/ent/kosummary"
	"github.com/fachebot/ko-digest-bot/internal/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bundleMixin := schema.Bundle{}.Mixin()
	bundleMixinFields0 := bundleMixin[0].Fields()
	_ = bundleMixinFields0
	bundleFields := schema.Bundle{}.Fields()
	_ = bundleFields
	// bundleDescCreateTime is the schema descriptor for create_time field.
	bundleDescCreateTime := bundleMixinFields0[0].Descriptor()
	// bundle.DefaultCreateTime holds the default value on creation for the create_time field.
	bundle.DefaultCreateTime = bundleDescCreateTime.Default.(func() time.Time)
	// bundleDescUpdateTime is the schema descriptor for update_time field.
	bundleDescUpdateTime := bundleMixinFields0[1].Descriptor()
	// bundle.DefaultUpdateTime holds the default value on creation for the update_time field.
	bundle.DefaultUpdateTime = bundleDescUpdateTime.Default.(func() time.Time)
	// bundle.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	bundle.UpdateDefaultUpdateTime = bundleDescUpdateTime.UpdateDefault.(func() time.Time)
	// bundleDescID is the schema descriptor for id field.
	bundleDescID := bundleFields[0].Descriptor()
	// bundle.DefaultID holds the default value on creation for the id field.
	bundle.DefaultID = bundleDescID.Default.(func() uuid.UUID)
	bundlecategoryMixin := schema.BundleCategory{}.Mixin()
	bundlecategoryMixinFields0 := bundlecategoryMixin[0].Fields()
	_ = bundlecategoryMixinFields0
	bundlecategoryFields := schema.BundleCategory{}.Fields()
	_ = bundlecategoryFields
	// bundlecategoryDescCreateTime is the schema descriptor for create_time field.
	bundlecategoryDescCreateTime := bundlecategoryMixinFields0[0].Descriptor()
	// bundlecategory.DefaultCreateTime holds the default value on creation for the create_time field.
	bundlecategory.DefaultCreateTime = bundlecategoryDescCreateTime.Default.(func() time.Time)
	// bundlecategoryDescUpdateTime is the schema descriptor for update_time field.
	bundlecategoryDescUpdateTime := bundlecategoryMixinFields0[1].Descriptor()
	// bundlecategory.DefaultUpdateTime holds the default value on creation for the update_time field.
	bundlecategory.DefaultUpdateTime = bundlecategoryDescUpdateTime.Default.(func() time.Time)
	// bundlecategory.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	bundlecategory.UpdateDefaultUpdateTime = bundlecategoryDescUpdateTime.UpdateDefault.(func() time.Time)
	// bundlecategoryDescSummaryRequired is the schema descriptor for summary_required field.
	bundlecategoryDescSummaryRequired := bundlecategoryFields[2].Descriptor()
	// bundlecategory.DefaultSummaryRequired holds the default value on creation for the summary_required field.
	bundlecategory.DefaultSummaryRequired = bundlecategoryDescSummaryRequired.Default.(bool)
	// bundlecategoryDescID is the schema descriptor for id field.
	bundlecategoryDescID := bundlecategoryFields[0].Descriptor()
	// bundlecategory.DefaultID holds the default value on creation for the id field.
	bundlecategory.DefaultID = bundlecategoryDescID.Default.(func() uuid.UUID)
	dailydoseMixin := schema.DailyDose{}.Mixin()
	dailydoseMixinFields0 := dailydoseMixin[0].Fields()
	_ = dailydoseMixinFields0
	dailydoseFields := schema.DailyDose{}.Fields()
	_ = dailydoseFields
	// dailydoseDescCreateTime is the schema descriptor for create_time field.
	dailydoseDescCreateTime := dailydoseMixinFields0[0].Descriptor()
	// dailydose.DefaultCreateTime holds the default value on creation for the create_time field.
	dailydose.DefaultCreateTime = dailydoseDescCreateTime.Default.(func() time.Time)
	// dailydoseDescUpdateTime is the schema descriptor for update_time field.
	dailydoseDescUpdateTime := dailydoseMixinFields0[1].Descriptor()
	// dailydose.DefaultUpdateTime holds the default value on creation for the update_time field.
	dailydose.DefaultUpdateTime = dailydoseDescUpdateTime.Default.(func() time.Time)
	// dailydose.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	dailydose.UpdateDefaultUpdateTime = dailydoseDescUpdateTime.UpdateDefault.(func() time.Time)
	// dailydoseDescID is the schema descriptor for id field.
	dailydoseDescID := dailydoseFields[0].Descriptor()
	// dailydose.DefaultID holds the default value on creation for the id field.
	dailydose.DefaultID = dailydoseDescID.Default.(func() uuid.UUID)
	digestrunMixin := schema.DigestRun{}.Mixin()
	digestrunMixinFields0 := digestrunMixin[0].Fields()
	_ = digestrunMixinFields0
	digestrunFields := schema.DigestRun{}.Fields()
	_ = digestrunFields
	// digestrunDescCreateTime is the schema descriptor for create_time field.
	digestrunDescCreateTime := digestrunMixinFields0[0].Descriptor()
	// digestrun.DefaultCreateTime holds the default value on creation for the create_time field.
	digestrun.DefaultCreateTime = digestrunDescCreateTime.Default.(func() time.Time)
	// digestrunDescUpdateTime is the schema descriptor for update_time field.
	digestrunDescUpdateTime := digestrunMixinFields0[1].Descriptor()
	// digestrun.DefaultUpdateTime holds the default value on creation for the update_time field.
	digestrun.DefaultUpdateTime = digestrunDescUpdateTime.Default.(func() time.Time)
	// digestrun.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	digestrun.UpdateDefaultUpdateTime = digestrunDescUpdateTime.UpdateDefault.(func() time.Time)
	digesttaskMixin := schema.DigestTask{}.Mixin()
	digesttaskMixinFields0 := digesttaskMixin[0].Fields()
	_ = digesttaskMixinFields0
	digesttaskFields := schema.DigestTask{}.Fields()
	_ = digesttaskFields
	// digesttaskDescCreateTime is the schema descriptor for create_time field.
	digesttaskDescCreateTime := digesttaskMixinFields0[0].Descriptor()
	// digesttask.DefaultCreateTime holds the default value on creation for the create_time field.
	digesttask.DefaultCreateTime = digesttaskDescCreateTime.Default.(func() time.Time)
	// digesttaskDescUpdateTime is the schema descriptor for update_time field.
	digesttaskDescUpdateTime := digesttaskMixinFields0[1].Descriptor()
	// digesttask.DefaultUpdateTime holds the default value on creation for the update_time field.
	digesttask.DefaultUpdateTime = digesttaskDescUpdateTime.Default.(func() time.Time)
	// digesttask.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	digesttask.UpdateDefaultUpdateTime = digesttaskDescUpdateTime.UpdateDefault.(func() time.Time)
	knowledgeobjectMixin := schema.KnowledgeObject{}.Mixin()
	knowledgeobjectMixinFields0 := knowledgeobjectMixin[0].Fields()
	_ = knowledgeobjectMixinFields0
	knowledgeobjectFields := schema.KnowledgeObject{}.Fields()
	_ = knowledgeobjectFields
	// knowledgeobjectDescCreateTime is the schema descriptor for create_time field.
	knowledgeobjectDescCreateTime := knowledgeobjectMixinFields0[0].Descriptor()
	// knowledgeobject.DefaultCreateTime holds the default value on creation for the create_time field.
	knowledgeobject.DefaultCreateTime = knowledgeobjectDescCreateTime.Default.(func() time.Time)
	// knowledgeobjectDescUpdateTime is the schema descriptor for update_time field.
	knowledgeobjectDescUpdateTime := knowledgeobjectMixinFields0[1].Descriptor()
	// knowledgeobject.DefaultUpdateTime holds the default value on creation for the update_time field.
	knowledgeobject.DefaultUpdateTime = knowledgeobjectDescUpdateTime.Default.(func() time.Time)
	// knowledgeobject.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	knowledgeobject.UpdateDefaultUpdateTime = knowledgeobjectDescUpdateTime.UpdateDefault.(func() time.Time)
	// knowledgeobjectDescDeleted is the schema descriptor for deleted field.
	knowledgeobjectDescDeleted := knowledgeobjectFields[3].Descriptor()
	// knowledgeobject.DefaultDeleted holds the default value on creation for the deleted field.
	knowledgeobject.DefaultDeleted = knowledgeobjectDescDeleted.Default.(bool)
	// knowledgeobjectDescID is the schema descriptor for id field.
	knowledgeobjectDescID := knowledgeobjectFields[0].Descriptor()
	// knowledgeobject.DefaultID holds the default value on creation for the id field.
	knowledgeobject.DefaultID = knowledgeobjectDescID.Default.(func() uuid.UUID)
	kosummaryMixin := schema.KoSummary{}.Mixin()
	kosummaryMixinFields0 := kosummaryMixin[0].Fields()
	_ = kosummaryMixinFields0
	kosummaryFields := schema.KoSummary{}.Fields()
	_ = kosummaryFields
	// kosummaryDescCreateTime is the schema descriptor for create_time field.
	kosummaryDescCreateTime := kosummaryMixinFields0[0].Descriptor()
	// kosummary.DefaultCreateTime holds the default value on creation for the create_time field.
	kosummary.DefaultCreateTime = kosummaryDescCreateTime.Default.(func() time.Time)
	// kosummaryDescUpdateTime is the schema descriptor for update_time field.
	kosummaryDescUpdateTime := kosummaryMixinFields0[1].Descriptor()
	// kosummary.DefaultUpdateTime holds the default value on creation for the update_time field.
	kosummary.DefaultUpdateTime = kosummaryDescUpdateTime.Default.(func() time.Time)
	// kosummary.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	kosummary.UpdateDefaultUpdateTime = kosummaryDescUpdateTime.UpdateDefault.(func() time.Time)
}
