package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/discipleship/dto"
	"minhaigreja_backend/internals/features/discipleship/model"
	memberdto "minhaigreja_backend/internals/features/members/dto"
	membermodel "minhaigreja_backend/internals/features/members/model"
	helper "minhaigreja_backend/internals/helpers"
)

var validate = validator.New()

/* ================= Controller & Constructor ================= */

type LeaderController struct {
	DB *gorm.DB
}

func NewLeaderController(db *gorm.DB) *LeaderController {
	return &LeaderController{DB: db}
}

func memberRefsByID(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]memberdto.MemberRef, error) {
	out := make(map[uuid.UUID]memberdto.MemberRef, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []membermodel.MemberModel
	if err := db.Select("member_id, member_name, member_avatar_url").
		Where("member_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].MemberID] = memberdto.NewMemberRef(&rows[i])
	}
	return out, nil
}

func (ctl *LeaderController) leaderOfChurch(tx *gorm.DB, leaderID, churchID uuid.UUID) (*model.DiscipleshipLeaderModel, error) {
	var l model.DiscipleshipLeaderModel
	err := tx.Where("leader_id = ? AND leader_church_id = ?", leaderID, churchID).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

/* ================= Líderes ================= */

// GET /admin/discipleship/leaders
func (ctl *LeaderController) ListLeaders(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var leaders []model.DiscipleshipLeaderModel
	if err := ctl.DB.Where("leader_church_id = ?", churchID).
		Order("leader_created_at ASC").
		Find(&leaders).Error; err != nil {
		log.Printf("[discipleship] list leaders church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar líderes")
	}

	leaderIDs := make([]uuid.UUID, 0, len(leaders))
	memberIDs := make([]uuid.UUID, 0, len(leaders))
	for _, l := range leaders {
		leaderIDs = append(leaderIDs, l.LeaderID)
		memberIDs = append(memberIDs, l.LeaderMemberID)
	}
	refs, err := memberRefsByID(ctl.DB, memberIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar membros")
	}

	counts := map[uuid.UUID]int{}
	if len(leaderIDs) > 0 {
		var rows []struct {
			LeaderID uuid.UUID `gorm:"column:relationship_leader_id"`
			Total    int       `gorm:"column:total"`
		}
		if err := ctl.DB.Model(&model.DiscipleshipRelationshipModel{}).
			Select("relationship_leader_id, COUNT(*) AS total").
			Where("relationship_leader_id IN ?", leaderIDs).
			Group("relationship_leader_id").
			Scan(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar discípulos")
		}
		for _, r := range rows {
			counts[r.LeaderID] = r.Total
		}
	}

	out := make([]dto.LeaderListItem, 0, len(leaders))
	for _, l := range leaders {
		ref, ok := refs[l.LeaderMemberID]
		if !ok {
			continue
		}
		out = append(out, dto.LeaderListItem{
			LeaderID:      l.LeaderID,
			Member:        ref,
			Notes:         l.LeaderNotes,
			DiscipleCount: counts[l.LeaderID],
			CreatedAt:     l.LeaderCreatedAt,
		})
	}
	return helper.JsonOK(c, "", out)
}

// GET /admin/discipleship/leaders/:id: visão com discípulos e encontros
func (ctl *LeaderController) GetLeaderByID(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	l, err := ctl.leaderOfChurch(ctl.DB, id, churchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Líder não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar líder")
	}

	var relationships []model.DiscipleshipRelationshipModel
	if err := ctl.DB.Where("relationship_leader_id = ?", id).
		Order("relationship_started_at ASC").
		Find(&relationships).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar discípulos")
	}

	var meetings []model.DiscipleshipMeetingModel
	if err := ctl.DB.Where("meeting_leader_id = ?", id).
		Order("meeting_date DESC").
		Find(&meetings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar encontros")
	}

	meetingIDs := make([]uuid.UUID, 0, len(meetings))
	for _, m := range meetings {
		meetingIDs = append(meetingIDs, m.MeetingID)
	}
	var attendees []model.DiscipleshipMeetingAttendeeModel
	if len(meetingIDs) > 0 {
		if err := ctl.DB.Where("attendee_meeting_id IN ?", meetingIDs).
			Find(&attendees).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar presenças")
		}
	}

	refIDs := make([]uuid.UUID, 0, len(relationships)+len(attendees)+1)
	refIDs = append(refIDs, l.LeaderMemberID)
	for _, r := range relationships {
		refIDs = append(refIDs, r.RelationshipDiscipleID)
	}
	for _, a := range attendees {
		refIDs = append(refIDs, a.AttendeeMemberID)
	}
	refs, err := memberRefsByID(ctl.DB, refIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar membros")
	}
	leaderRef, ok := refs[l.LeaderMemberID]
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Líder não encontrado")
	}

	disciples := make([]dto.DiscipleResponse, 0, len(relationships))
	for _, r := range relationships {
		if ref, ok := refs[r.RelationshipDiscipleID]; ok {
			disciples = append(disciples, dto.DiscipleResponse{
				RelationshipID: r.RelationshipID,
				Member:         ref,
				StartedAt:      r.RelationshipStartedAt,
			})
		}
	}

	byMeeting := map[uuid.UUID][]memberdto.MemberRef{}
	for _, a := range attendees {
		if ref, ok := refs[a.AttendeeMemberID]; ok {
			byMeeting[a.AttendeeMeetingID] = append(byMeeting[a.AttendeeMeetingID], ref)
		}
	}
	meetingResp := make([]dto.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		meetingResp = append(meetingResp, dto.NewMeetingResponse(&meetings[i], byMeeting[meetings[i].MeetingID]))
	}

	resp := dto.LeaderDetailResponse{
		LeaderListItem: dto.LeaderListItem{
			LeaderID:      l.LeaderID,
			Member:        leaderRef,
			Notes:         l.LeaderNotes,
			DiscipleCount: len(disciples),
			CreatedAt:     l.LeaderCreatedAt,
		},
		Disciples: disciples,
		Meetings:  meetingResp,
	}
	return helper.JsonOK(c, "", resp)
}

// POST /admin/discipleship/leaders
func (ctl *LeaderController) CreateLeader(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateLeaderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var member membermodel.MemberModel
	if err := ctl.DB.Select("member_id").
		Where("member_id = ? AND member_church_id = ? AND member_deleted_at IS NULL", req.MemberID, churchID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membro não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar membro")
	}

	var exists int64
	if err := ctl.DB.Model(&model.DiscipleshipLeaderModel{}).
		Where("leader_church_id = ? AND leader_member_id = ?", churchID, req.MemberID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao verificar líder")
	}
	if exists > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Membro já é líder de discipulado")
	}

	l := &model.DiscipleshipLeaderModel{
		LeaderChurchID: churchID,
		LeaderMemberID: req.MemberID,
		LeaderNotes:    req.Notes,
	}
	if err := ctl.DB.Create(l).Error; err != nil {
		log.Printf("[discipleship] create leader church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar líder")
	}
	return helper.JsonCreated(c, "Líder de discipulado criado", l)
}

// DELETE /admin/discipleship/leaders/:id
// Cascata explícita: presenças -> encontros -> vínculos -> líder.
func (ctl *LeaderController) DeleteLeader(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := ctl.leaderOfChurch(tx, id, churchID); err != nil {
			return err
		}
		if err := tx.Exec(
			`DELETE FROM discipleship_meeting_attendees
			 WHERE attendee_meeting_id IN (SELECT meeting_id FROM discipleship_meetings WHERE meeting_leader_id = ?)`,
			id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_leader_id = ?", id).
			Delete(&model.DiscipleshipMeetingModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("relationship_leader_id = ?", id).
			Delete(&model.DiscipleshipRelationshipModel{}).Error; err != nil {
			return err
		}
		return tx.Where("leader_id = ?", id).Delete(&model.DiscipleshipLeaderModel{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Líder não encontrado")
		}
		log.Printf("[discipleship] delete leader id=%s err=%v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover líder")
	}
	return helper.JsonDeleted(c, "Líder removido", fiber.Map{"leader_id": id})
}

/* ================= Discípulos ================= */

// POST /admin/discipleship/leaders/:id/disciples
func (ctl *LeaderController) AddDisciple(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.AddDiscipleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var rel model.DiscipleshipRelationshipModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := ctl.leaderOfChurch(tx, id, churchID); err != nil {
			return err
		}
		var exists int64
		if err := tx.Model(&model.DiscipleshipRelationshipModel{}).
			Where("relationship_leader_id = ? AND relationship_disciple_id = ?", id, req.MemberID).
			Count(&exists).Error; err != nil {
			return err
		}
		if exists > 0 {
			return fiber.ErrConflict
		}
		rel = model.DiscipleshipRelationshipModel{
			RelationshipLeaderID:   id,
			RelationshipDiscipleID: req.MemberID,
		}
		return tx.Create(&rel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Líder não encontrado")
		}
		if errors.Is(err, fiber.ErrConflict) {
			return helper.JsonError(c, fiber.StatusConflict, "Discípulo já vinculado a este líder")
		}
		log.Printf("[discipleship] add disciple leader=%s err=%v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao vincular discípulo")
	}
	return helper.JsonCreated(c, "Discípulo vinculado", rel)
}

// DELETE /admin/discipleship/leaders/:id/disciples/:memberId
func (ctl *LeaderController) RemoveDisciple(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if _, err := ctl.leaderOfChurch(ctl.DB, id, churchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Líder não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar líder")
	}
	res := ctl.DB.Where("relationship_leader_id = ? AND relationship_disciple_id = ?", id, memberID).
		Delete(&model.DiscipleshipRelationshipModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao desvincular discípulo")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Vínculo não encontrado")
	}
	return helper.JsonDeleted(c, "Discípulo desvinculado", fiber.Map{"member_id": memberID})
}
