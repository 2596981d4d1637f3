package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/imobcrm/imobcrm_end/models"
	"github.com/imobcrm/imobcrm_end/utils"
)

func TestVisibleRecordsFilterAdmin(t *testing.T) {
	s := &utils.Session{ID: "admin1", Role: string(models.UserRoleADMIN), CompanyID: "company1"}

	filter := VisibleRecordsFilter(s)
	assert.Equal(t, bson.M{"companyId": "company1"}, filter)
}

func TestVisibleRecordsFilterCorretor(t *testing.T) {
	s := &utils.Session{ID: "user1", Role: string(models.UserRoleCORRETOR), CompanyID: "company1"}

	filter := VisibleRecordsFilter(s)
	assert.Equal(t, bson.M{"corretorId": "user1", "companyId": "company1"}, filter)
}

func TestVisibleRecordsFilterWithoutCompany(t *testing.T) {
	s := &utils.Session{ID: "user1", Role: string(models.UserRoleCORRETOR)}

	filter := VisibleRecordsFilter(s)
	assert.Equal(t, bson.M{"corretorId": "user1"}, filter)
}

func TestCanViewRecord(t *testing.T) {
	admin := &utils.Session{ID: "admin1", Role: string(models.UserRoleADMIN), CompanyID: "company1"}
	corretor := &utils.Session{ID: "user1", Role: string(models.UserRoleCORRETOR), CompanyID: "company1"}

	// admin sees everything inside the company, nothing outside
	assert.True(t, CanViewRecord(admin, "user1", "company1"))
	assert.True(t, CanViewRecord(admin, "user2", "company1"))
	assert.False(t, CanViewRecord(admin, "user1", "company2"))

	// corretor only their own records, pinned to the company
	assert.True(t, CanViewRecord(corretor, "user1", "company1"))
	assert.False(t, CanViewRecord(corretor, "user2", "company1"))
	assert.False(t, CanViewRecord(corretor, "user1", "company2"))
}

func TestCanViewRecordWithoutCompany(t *testing.T) {
	s := &utils.Session{ID: "user1", Role: string(models.UserRoleCORRETOR)}

	assert.True(t, CanViewRecord(s, "user1", ""))
	assert.True(t, CanViewRecord(s, "user1", "company1"))
	assert.False(t, CanViewRecord(s, "user2", ""))
}

func TestStripImmutableFields(t *testing.T) {
	update := bson.M{
		"nome":       "Maria",
		"companyId":  "other",
		"corretorId": "other",
		"_id":        "other",
	}

	StripImmutableFields(update)

	assert.Equal(t, bson.M{"nome": "Maria"}, update)
}
