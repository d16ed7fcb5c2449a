package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"minhaigreja_backend/internals/features/groups/dto"
	"minhaigreja_backend/internals/features/groups/model"
	svc "minhaigreja_backend/internals/features/groups/service"
	memberdto "minhaigreja_backend/internals/features/members/dto"
	membermodel "minhaigreja_backend/internals/features/members/model"
	helper "minhaigreja_backend/internals/helpers"
)

var validate = validator.New()

/* ================= Controller & Constructor ================= */

type GroupController struct {
	DB *gorm.DB
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db}
}

var groupSortCols = map[string]string{
	"name":       "group_name",
	"status":     "group_status",
	"created_at": "group_created_at",
}

// memberRefsByID carrega referências leves de membros em lote.
func memberRefsByID(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]memberdto.MemberRef, error) {
	out := map[uuid.UUID]memberdto.MemberRef{}
	if len(ids) == 0 {
		return out, nil
	}
	seen := map[uuid.UUID]struct{}{}
	uniq := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	var rows []membermodel.MemberModel
	if err := db.Select("member_id", "member_name", "member_avatar_url").
		Where("member_id IN ? AND member_deleted_at IS NULL", uniq).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].MemberID] = memberdto.NewMemberRef(&rows[i])
	}
	return out, nil
}

func (ctl *GroupController) groupOfChurch(tx *gorm.DB, groupID, churchID uuid.UUID) (*model.GroupModel, error) {
	var g model.GroupModel
	err := tx.Where("group_id = ? AND group_church_id = ?", groupID, churchID).First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

/* ================= Handlers ================= */

// GET /admin/groups
func (ctl *GroupController) ListGroups(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParsePaging(c, "name", "asc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.GroupModel{}).Where("group_church_id = ?", churchID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("group_name ILIKE ?", "%"+search+"%")
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("group_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar grupos")
	}

	order, _ := p.SafeOrderClause(groupSortCols, "name")
	var groups []model.GroupModel
	if err := q.Order(order).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&groups).Error; err != nil {
		log.Printf("[groups] list church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar grupos")
	}

	groupIDs := make([]uuid.UUID, 0, len(groups))
	leaderIDs := make([]uuid.UUID, 0, len(groups)*2)
	for _, g := range groups {
		groupIDs = append(groupIDs, g.GroupID)
		if g.GroupLeaderID != nil {
			leaderIDs = append(leaderIDs, *g.GroupLeaderID)
		}
		if g.GroupCoLeaderID != nil {
			leaderIDs = append(leaderIDs, *g.GroupCoLeaderID)
		}
	}
	refs, err := memberRefsByID(ctl.DB, leaderIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar líderes")
	}

	counts := map[uuid.UUID]int{}
	if len(groupIDs) > 0 {
		var rows []struct {
			GroupID uuid.UUID `gorm:"column:group_member_group_id"`
			Total   int       `gorm:"column:total"`
		}
		if err := ctl.DB.Model(&model.GroupMemberModel{}).
			Select("group_member_group_id, COUNT(*) AS total").
			Where("group_member_group_id IN ?", groupIDs).
			Group("group_member_group_id").
			Scan(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar membros")
		}
		for _, r := range rows {
			counts[r.GroupID] = r.Total
		}
	}

	out := make([]dto.GroupListItem, 0, len(groups))
	for i := range groups {
		g := &groups[i]
		var leader, coLeader *memberdto.MemberRef
		if g.GroupLeaderID != nil {
			if ref, ok := refs[*g.GroupLeaderID]; ok {
				leader = &ref
			}
		}
		if g.GroupCoLeaderID != nil {
			if ref, ok := refs[*g.GroupCoLeaderID]; ok {
				coLeader = &ref
			}
		}
		out = append(out, dto.NewGroupListItem(g, leader, coLeader, counts[g.GroupID]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /admin/groups/:id: visão completa com membros, encontros e taxa
func (ctl *GroupController) GetGroupByID(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	g, err := ctl.groupOfChurch(ctl.DB, id, churchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grupo não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar grupo")
	}

	var memberships []model.GroupMemberModel
	if err := ctl.DB.Where("group_member_group_id = ?", id).
		Order("group_member_joined_at ASC").
		Find(&memberships).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar membros")
	}

	var meetings []model.GroupMeetingModel
	if err := ctl.DB.Where("meeting_group_id = ?", id).
		Order("meeting_date DESC").
		Find(&meetings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar encontros")
	}

	meetingIDs := make([]uuid.UUID, 0, len(meetings))
	for _, m := range meetings {
		meetingIDs = append(meetingIDs, m.MeetingID)
	}
	var attendance []model.GroupMeetingAttendanceModel
	if len(meetingIDs) > 0 {
		if err := ctl.DB.Where("attendance_meeting_id IN ?", meetingIDs).
			Find(&attendance).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar presenças")
		}
	}

	refIDs := make([]uuid.UUID, 0, len(memberships)+len(attendance)+2)
	for _, ms := range memberships {
		refIDs = append(refIDs, ms.GroupMemberMemberID)
	}
	for _, a := range attendance {
		refIDs = append(refIDs, a.AttendanceMemberID)
	}
	if g.GroupLeaderID != nil {
		refIDs = append(refIDs, *g.GroupLeaderID)
	}
	if g.GroupCoLeaderID != nil {
		refIDs = append(refIDs, *g.GroupCoLeaderID)
	}
	refs, err := memberRefsByID(ctl.DB, refIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar membros")
	}

	memberResp := make([]dto.GroupMemberResponse, 0, len(memberships))
	for _, ms := range memberships {
		ref, ok := refs[ms.GroupMemberMemberID]
		if !ok {
			continue
		}
		memberResp = append(memberResp, dto.GroupMemberResponse{
			GroupMemberID: ms.GroupMemberID,
			Member:        ref,
			Role:          ms.GroupMemberRole,
			JoinedAt:      ms.GroupMemberJoinedAt,
		})
	}

	byMeeting := map[uuid.UUID][]model.GroupMeetingAttendanceModel{}
	for _, a := range attendance {
		byMeeting[a.AttendanceMeetingID] = append(byMeeting[a.AttendanceMeetingID], a)
	}

	tallies := make([]svc.MeetingTally, 0, len(meetings))
	meetingResp := make([]dto.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		m := &meetings[i]
		rows := byMeeting[m.MeetingID]
		present := 0
		attResp := make([]dto.AttendanceResponse, 0, len(rows))
		for _, a := range rows {
			if a.AttendanceStatus == model.MeetingAttendancePresent {
				present++
			}
			if ref, ok := refs[a.AttendanceMemberID]; ok {
				attResp = append(attResp, dto.AttendanceResponse{Member: ref, Status: a.AttendanceStatus})
			}
		}
		tallies = append(tallies, svc.MeetingTally{AttendanceCount: present, TotalMembers: len(rows)})
		meetingResp = append(meetingResp, dto.NewMeetingResponse(m, attResp, present, len(rows)))
	}

	var leader, coLeader *memberdto.MemberRef
	if g.GroupLeaderID != nil {
		if ref, ok := refs[*g.GroupLeaderID]; ok {
			leader = &ref
		}
	}
	if g.GroupCoLeaderID != nil {
		if ref, ok := refs[*g.GroupCoLeaderID]; ok {
			coLeader = &ref
		}
	}

	resp := dto.GroupDetailResponse{
		GroupListItem:  dto.NewGroupListItem(g, leader, coLeader, len(memberships)),
		Members:        memberResp,
		Meetings:       meetingResp,
		AttendanceRate: svc.GroupAttendanceRate(tallies),
	}
	return helper.JsonOK(c, "", resp)
}

// POST /admin/groups
func (ctl *GroupController) CreateGroup(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	m := req.ToModel(churchID)
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Printf("[groups] create church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar grupo")
	}
	return helper.JsonCreated(c, "Grupo criado", dto.NewGroupListItem(m, nil, nil, 0))
}

// PUT /admin/groups/:id
func (ctl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	g, err := ctl.groupOfChurch(ctl.DB, id, churchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grupo não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar grupo")
	}
	req.ApplyToModel(g)
	if err := ctl.DB.Save(g).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar grupo")
	}
	return helper.JsonUpdated(c, "Grupo atualizado", dto.NewGroupListItem(g, nil, nil, 0))
}

// DELETE /admin/groups/:id
// Cascata explícita: presenças -> encontros -> vínculos -> grupo.
func (ctl *GroupController) DeleteGroup(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := ctl.groupOfChurch(tx, id, churchID); err != nil {
			return err
		}
		if err := tx.Exec(
			`DELETE FROM group_meeting_attendance
			 WHERE attendance_meeting_id IN (SELECT meeting_id FROM group_meetings WHERE meeting_group_id = ?)`,
			id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_group_id = ?", id).
			Delete(&model.GroupMeetingModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_member_group_id = ?", id).
			Delete(&model.GroupMemberModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&membermodel.MemberModel{}).
			Where("member_group_id = ?", id).
			Update("member_group_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("group_id = ?", id).Delete(&model.GroupModel{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grupo não encontrado")
		}
		log.Printf("[groups] delete id=%s err=%v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover grupo")
	}
	return helper.JsonDeleted(c, "Grupo removido", fiber.Map{"group_id": id})
}

/* ================= Membros do grupo ================= */

// POST /admin/groups/:id/members
func (ctl *GroupController) AddGroupMember(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req dto.AddGroupMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	role := model.GroupRoleMember
	if req.Role != nil {
		role = *req.Role
	}

	var ms model.GroupMemberModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := ctl.groupOfChurch(tx, id, churchID); err != nil {
			return err
		}
		var exists int64
		if err := tx.Model(&model.GroupMemberModel{}).
			Where("group_member_group_id = ? AND group_member_member_id = ?", id, req.MemberID).
			Count(&exists).Error; err != nil {
			return err
		}
		if exists > 0 {
			return fiber.ErrConflict
		}
		ms = model.GroupMemberModel{
			GroupMemberGroupID:  id,
			GroupMemberMemberID: req.MemberID,
			GroupMemberRole:     role,
		}
		if err := tx.Create(&ms).Error; err != nil {
			return err
		}
		return tx.Model(&membermodel.MemberModel{}).
			Where("member_id = ? AND member_church_id = ?", req.MemberID, churchID).
			Update("member_group_id", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grupo não encontrado")
		}
		if errors.Is(err, fiber.ErrConflict) {
			return helper.JsonError(c, fiber.StatusConflict, "Membro já pertence ao grupo")
		}
		log.Printf("[groups] add member group=%s err=%v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao adicionar membro")
	}
	return helper.JsonCreated(c, "Membro adicionado ao grupo", ms)
}

// PUT /admin/groups/:id/members/:memberId
func (ctl *GroupController) UpdateGroupMemberRole(c *fiber.Ctx) error {
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
	var req dto.UpdateGroupMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if _, err := ctl.groupOfChurch(ctl.DB, id, churchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Grupo não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar grupo")
	}
	res := ctl.DB.Model(&model.GroupMemberModel{}).
		Where("group_member_group_id = ? AND group_member_member_id = ?", id, memberID).
		Update("group_member_role", req.Role)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar papel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Membro não pertence ao grupo")
	}
	return helper.JsonUpdated(c, "Papel atualizado", fiber.Map{"member_id": memberID, "role": req.Role})
}

// DELETE /admin/groups/:id/members/:memberId
func (ctl *GroupController) RemoveGroupMember(c *fiber.Ctx) error {
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
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := ctl.groupOfChurch(tx, id, churchID); err != nil {
			return err
		}
		res := tx.Where("group_member_group_id = ? AND group_member_member_id = ?", id, memberID).
			Delete(&model.GroupMemberModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&membermodel.MemberModel{}).
			Where("member_id = ? AND member_group_id = ?", memberID, id).
			Update("member_group_id", nil).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Membro não pertence ao grupo")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover membro")
	}
	return helper.JsonDeleted(c, "Membro removido do grupo", fiber.Map{"member_id": memberID})
}
