package model

import (
	"strconv"
	"strings"
	"time"
)

type ObjectLevel string

const (
	LevelRegion                                ObjectLevel = "Region"
	LevelAdministrativeArea                    ObjectLevel = "AdministrativeArea"
	LevelMunicipalArea                         ObjectLevel = "MunicipalArea"
	LevelRuralUrbanSettlement                  ObjectLevel = "RuralUrbanSettlement"
	LevelCity                                  ObjectLevel = "City"
	LevelLocality                              ObjectLevel = "Locality"
	LevelElementOfPlanningStructure            ObjectLevel = "ElementOfPlanningStructure"
	LevelElementOfRoadNetwork                  ObjectLevel = "ElementOfRoadNetwork"
	LevelLand                                  ObjectLevel = "Land"
	LevelBuilding                              ObjectLevel = "Building"
	LevelRoom                                  ObjectLevel = "Room"
	LevelRoomInRooms                           ObjectLevel = "RoomInRooms"
	LevelAutonomousRegionLevel                 ObjectLevel = "AutonomousRegionLevel"
	LevelIntracityLevel                        ObjectLevel = "IntracityLevel"
	LevelAdditionalTerritoriesLevel            ObjectLevel = "AdditionalTerritoriesLevel"
	LevelLevelOfObjectsInAdditionalTerritories ObjectLevel = "LevelOfObjectsInAdditionalTerritories"
	LevelCarPlace                              ObjectLevel = "CarPlace"
)

// objectLevels is indexed by the registry level code minus one
var objectLevels = []ObjectLevel{
	LevelRegion,
	LevelAdministrativeArea,
	LevelMunicipalArea,
	LevelRuralUrbanSettlement,
	LevelCity,
	LevelLocality,
	LevelElementOfPlanningStructure,
	LevelElementOfRoadNetwork,
	LevelLand,
	LevelBuilding,
	LevelRoom,
	LevelRoomInRooms,
	LevelAutonomousRegionLevel,
	LevelIntracityLevel,
	LevelAdditionalTerritoriesLevel,
	LevelLevelOfObjectsInAdditionalTerritories,
	LevelCarPlace,
}

var objectLevelTexts = map[ObjectLevel]string{
	LevelRegion:                                "Регион",
	LevelAdministrativeArea:                    "Административный район",
	LevelMunicipalArea:                         "Муниципальный район",
	LevelRuralUrbanSettlement:                  "Сельско-городская территория",
	LevelCity:                                  "Город",
	LevelLocality:                              "Населенный пункт",
	LevelElementOfPlanningStructure:            "Элемент планировочной структуры",
	LevelElementOfRoadNetwork:                  "Элемент дорожной сети",
	LevelLand:                                  "Земельный участок",
	LevelBuilding:                              "Здание (сооружение)",
	LevelRoom:                                  "Помещение",
	LevelRoomInRooms:                           "Помещение в помещении",
	LevelAutonomousRegionLevel:                 "Автономный округ",
	LevelIntracityLevel:                        "Внутригородской уровень",
	LevelAdditionalTerritoriesLevel:            "Дополнительные территории",
	LevelLevelOfObjectsInAdditionalTerritories: "Уровень объектов на дополнительных территориях",
	LevelCarPlace:                              "Машиноместо",
}

// ObjectLevelFromCode maps a registry level code (1..17)
func ObjectLevelFromCode(code int) (ObjectLevel, bool) {
	if code < 1 || code > len(objectLevels) {
		return "", false
	}
	return objectLevels[code-1], true
}

func (ol ObjectLevel) Text() string {
	return objectLevelTexts[ol]
}

var houseTypes = []string{
	"Владение",
	"Здание (сооружение)",
	"Дом",
	"Гараж",
	"Здание",
	"Шахта",
	"Строение",
	"Сооружение",
	"Литера",
	"Корпус",
	"Подвал",
	"Котельная",
	"Погреб",
	"Объект незавершенного строительства",
}

func HouseTypeText(code int) string {
	if code < 1 || code > len(houseTypes) {
		return ""
	}
	return houseTypes[code-1]
}

// Address is a street level registry record. Several versions of one object
// can exist; the one with the latest StartDate wins.
type Address struct {
	Id         int64     `db:"id"`
	ObjectId   int64     `db:"object_id"`
	ObjectGuid string    `db:"object_guid"`
	Name       string    `db:"name"`
	TypeName   string    `db:"type_name"`
	Level      int       `db:"level"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	IsActual   bool      `db:"is_actual"`
	IsActive   bool      `db:"is_active"`
}

type HousesAddress struct {
	Id         int64     `db:"id"`
	ObjectId   int64     `db:"object_id"`
	ObjectGuid string    `db:"object_guid"`
	HouseNum   string    `db:"house_num"`
	AddNum1    string    `db:"add_num1"`
	AddNum2    string    `db:"add_num2"`
	HouseType  int       `db:"house_type"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	IsActual   bool      `db:"is_actual"`
	IsActive   bool      `db:"is_active"`
}

type HierarchyAddress struct {
	Id             int64  `db:"id"`
	ObjectId       int64  `db:"object_id"`
	ParentObjectId int64  `db:"parent_obj_id"`
	Path           string `db:"path"`
	IsActive       bool   `db:"is_active"`
}

// AncestorIds splits Path into object ids, root first. Malformed parts are skipped.
func (ha *HierarchyAddress) AncestorIds() []int64 {
	parts := strings.Split(ha.Path, ".")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

type AddressElement struct {
	ObjectId        int64       `json:"objectId"`
	ObjectGuid      string      `json:"objectGuid"`
	Text            string      `json:"text"`
	ObjectLevel     ObjectLevel `json:"objectLevel"`
	ObjectLevelText string      `json:"objectLevelText"`
}

func (a *Address) Element() *AddressElement {
	level, _ := ObjectLevelFromCode(a.Level)
	return &AddressElement{
		ObjectId:        a.ObjectId,
		ObjectGuid:      a.ObjectGuid,
		Text:            strings.TrimSpace(a.TypeName + " " + a.Name),
		ObjectLevel:     level,
		ObjectLevelText: level.Text(),
	}
}

func (h *HousesAddress) Element() *AddressElement {
	return &AddressElement{
		ObjectId:        h.ObjectId,
		ObjectGuid:      h.ObjectGuid,
		Text:            h.HouseNum,
		ObjectLevel:     LevelBuilding,
		ObjectLevelText: LevelBuilding.Text(),
	}
}
