package service

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/imobcrm/imobcrm_end/utils"
)

// VisibleRecordsFilter builds the Mongo filter for records the session may
// read. Admins see every record of their company; corretores only see
// records they authored, additionally pinned to their company when the
// profile carries one.
func VisibleRecordsFilter(s *utils.Session) bson.M {
	if s.IsAdmin() && s.CompanyID != "" {
		return bson.M{"companyId": s.CompanyID}
	}
	if s.CompanyID != "" {
		return bson.M{"corretorId": s.ID, "companyId": s.CompanyID}
	}
	// Profile without company linkage falls back to ownership only.
	return bson.M{"corretorId": s.ID}
}

// CanViewRecord is the same access rule as a predicate over one record's
// ownership fields.
func CanViewRecord(s *utils.Session, corretorID, companyID string) bool {
	if s.IsAdmin() && s.CompanyID != "" {
		return companyID == s.CompanyID
	}
	if s.CompanyID != "" {
		return corretorID == s.ID && companyID == s.CompanyID
	}
	return corretorID == s.ID
}

// StripImmutableFields drops ownership and tenant fields from an update
// document. companyId is immutable after creation and corretorId never
// changes hands through an update.
func StripImmutableFields(update bson.M) {
	delete(update, "companyId")
	delete(update, "corretorId")
	delete(update, "_id")
}
