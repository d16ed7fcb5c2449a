package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/discipleship/dto"
	"minhaigreja_backend/internals/features/discipleship/model"
	memberdto "minhaigreja_backend/internals/features/members/dto"
	helper "minhaigreja_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type MeetingController struct {
	DB *gorm.DB
}

func NewMeetingController(db *gorm.DB) *MeetingController {
	return &MeetingController{DB: db}
}

func (ctl *MeetingController) leaderOfChurch(tx *gorm.DB, leaderID, churchID uuid.UUID) error {
	var l model.DiscipleshipLeaderModel
	return tx.Select("leader_id").
		Where("leader_id = ? AND leader_church_id = ?", leaderID, churchID).
		First(&l).Error
}

/* ================= Handlers ================= */

// POST /admin/discipleship/leaders/:id/meetings
// Upsert do encontro + substituição total dos participantes na mesma
// transação.
func (ctl *MeetingController) UpsertMeeting(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	leaderID, err := uuid.Parse(c.Params("id"))
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

	var meeting model.DiscipleshipMeetingModel
	created := false
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctl.leaderOfChurch(tx, leaderID, churchID); err != nil {
			return err
		}

		if req.MeetingID != nil {
			if err := tx.Where("meeting_id = ? AND meeting_leader_id = ?", *req.MeetingID, leaderID).
				First(&meeting).Error; err != nil {
				return err
			}
			meeting.MeetingDate = req.MeetingDate
			meeting.MeetingTopic = req.MeetingTopic
			meeting.MeetingNotes = req.MeetingNotes
			if req.Status != nil {
				meeting.MeetingStatus = *req.Status
			}
			if err := tx.Save(&meeting).Error; err != nil {
				return err
			}
		} else {
			created = true
			meeting = model.DiscipleshipMeetingModel{
				MeetingLeaderID: leaderID,
				MeetingDate:     req.MeetingDate,
				MeetingTopic:    req.MeetingTopic,
				MeetingNotes:    req.MeetingNotes,
				MeetingStatus:   model.MeetingStatusScheduled,
			}
			if req.Status != nil {
				meeting.MeetingStatus = *req.Status
			}
			if err := tx.Create(&meeting).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("attendee_meeting_id = ?", meeting.MeetingID).
			Delete(&model.DiscipleshipMeetingAttendeeModel{}).Error; err != nil {
			return err
		}
		if len(req.AttendeeIDs) == 0 {
			return nil
		}
		rows := make([]model.DiscipleshipMeetingAttendeeModel, 0, len(req.AttendeeIDs))
		for _, mid := range req.AttendeeIDs {
			rows = append(rows, model.DiscipleshipMeetingAttendeeModel{
				AttendeeMeetingID: meeting.MeetingID,
				AttendeeMemberID:  mid,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Líder ou encontro não encontrado")
		}
		log.Printf("[discipleship] upsert meeting leader=%s err=%v", leaderID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar encontro")
	}

	refs, err := memberRefsByID(ctl.DB, req.AttendeeIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar membros")
	}
	attendees := make([]memberdto.MemberRef, 0, len(req.AttendeeIDs))
	for _, mid := range req.AttendeeIDs {
		if ref, ok := refs[mid]; ok {
			attendees = append(attendees, ref)
		}
	}
	resp := dto.NewMeetingResponse(&meeting, attendees)
	if created {
		return helper.JsonCreated(c, "Encontro registrado", resp)
	}
	return helper.JsonUpdated(c, "Encontro atualizado", resp)
}

// DELETE /admin/discipleship/leaders/:id/meetings/:meetingId
// Cascata explícita: participantes antes do encontro.
func (ctl *MeetingController) DeleteMeeting(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	leaderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	meetingID, err := uuid.Parse(c.Params("meetingId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctl.leaderOfChurch(tx, leaderID, churchID); err != nil {
			return err
		}
		var meeting model.DiscipleshipMeetingModel
		if err := tx.Where("meeting_id = ? AND meeting_leader_id = ?", meetingID, leaderID).
			First(&meeting).Error; err != nil {
			return err
		}
		if err := tx.Where("attendee_meeting_id = ?", meetingID).
			Delete(&model.DiscipleshipMeetingAttendeeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meeting).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Encontro não encontrado")
		}
		log.Printf("[discipleship] delete meeting id=%s err=%v", meetingID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover encontro")
	}
	return helper.JsonDeleted(c, "Encontro removido", fiber.Map{"meeting_id": meetingID})
}
