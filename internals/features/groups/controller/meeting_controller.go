package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/groups/dto"
	"minhaigreja_backend/internals/features/groups/model"
	helper "minhaigreja_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type MeetingController struct {
	DB *gorm.DB
}

func NewMeetingController(db *gorm.DB) *MeetingController {
	return &MeetingController{DB: db}
}

func (ctl *MeetingController) meetingOfGroup(tx *gorm.DB, meetingID, groupID uuid.UUID) (*model.GroupMeetingModel, error) {
	var m model.GroupMeetingModel
	err := tx.Where("meeting_id = ? AND meeting_group_id = ?", meetingID, groupID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

/* ================= Handlers ================= */

// POST /admin/groups/:id/meetings
// Cria ou atualiza o encontro conforme a presença de meeting_id no payload.
func (ctl *MeetingController) UpsertMeeting(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.UpsertMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var meeting model.GroupMeetingModel
	created := false
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var g model.GroupModel
		if err := tx.Select("group_id").
			Where("group_id = ? AND group_church_id = ?", groupID, churchID).
			First(&g).Error; err != nil {
			return err
		}
		if req.MeetingID != nil {
			m, err := ctl.meetingOfGroup(tx, *req.MeetingID, groupID)
			if err != nil {
				return err
			}
			m.MeetingDate = req.MeetingDate
			m.MeetingTopic = req.MeetingTopic
			m.MeetingNotes = req.MeetingNotes
			if err := tx.Save(m).Error; err != nil {
				return err
			}
			meeting = *m
			return nil
		}
		created = true
		meeting = model.GroupMeetingModel{
			MeetingGroupID: groupID,
			MeetingDate:    req.MeetingDate,
			MeetingTopic:   req.MeetingTopic,
			MeetingNotes:   req.MeetingNotes,
		}
		return tx.Create(&meeting).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grupo ou encontro não encontrado")
		}
		log.Printf("[groups] upsert meeting group=%s err=%v", groupID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar encontro")
	}
	resp := dto.NewMeetingResponse(&meeting, nil, 0, 0)
	if created {
		return helper.JsonCreated(c, "Encontro registrado", resp)
	}
	return helper.JsonUpdated(c, "Encontro atualizado", resp)
}

// PUT /admin/groups/:id/meetings/:meetingId/attendance
// Substituição total: apaga a lista atual e grava o conjunto enviado,
// tudo na mesma transação.
func (ctl *MeetingController) RecordAttendance(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	meetingID, err := uuid.Parse(c.Params("meetingId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var g model.GroupModel
		if err := tx.Select("group_id").
			Where("group_id = ? AND group_church_id = ?", groupID, churchID).
			First(&g).Error; err != nil {
			return err
		}
		if _, err := ctl.meetingOfGroup(tx, meetingID, groupID); err != nil {
			return err
		}
		if err := tx.Where("attendance_meeting_id = ?", meetingID).
			Delete(&model.GroupMeetingAttendanceModel{}).Error; err != nil {
			return err
		}
		if len(req.Entries) == 0 {
			return nil
		}
		rows := make([]model.GroupMeetingAttendanceModel, 0, len(req.Entries))
		for _, e := range req.Entries {
			rows = append(rows, model.GroupMeetingAttendanceModel{
				AttendanceMeetingID: meetingID,
				AttendanceMemberID:  e.MemberID,
				AttendanceStatus:    e.Status,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grupo ou encontro não encontrado")
		}
		log.Printf("[groups] record attendance meeting=%s err=%v", meetingID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao registrar presenças")
	}

	present := 0
	for _, e := range req.Entries {
		if e.Status == model.MeetingAttendancePresent {
			present++
		}
	}
	return helper.JsonUpdated(c, "Presenças registradas", fiber.Map{
		"meeting_id":       meetingID,
		"attendance_count": present,
		"total_members":    len(req.Entries),
	})
}

// DELETE /admin/groups/:id/meetings/:meetingId
// Cascata explícita: presenças antes do encontro.
func (ctl *MeetingController) DeleteMeeting(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	meetingID, err := uuid.Parse(c.Params("meetingId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var g model.GroupModel
		if err := tx.Select("group_id").
			Where("group_id = ? AND group_church_id = ?", groupID, churchID).
			First(&g).Error; err != nil {
			return err
		}
		if _, err := ctl.meetingOfGroup(tx, meetingID, groupID); err != nil {
			return err
		}
		if err := tx.Where("attendance_meeting_id = ?", meetingID).
			Delete(&model.GroupMeetingAttendanceModel{}).Error; err != nil {
			return err
		}
		return tx.Where("meeting_id = ?", meetingID).Delete(&model.GroupMeetingModel{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Encontro não encontrado")
		}
		log.Printf("[groups] delete meeting id=%s err=%v", meetingID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover encontro")
	}
	return helper.JsonDeleted(c, "Encontro removido", fiber.Map{"meeting_id": meetingID})
}
