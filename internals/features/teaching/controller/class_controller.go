package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	memberdto "minhaigreja_backend/internals/features/members/dto"
	membermodel "minhaigreja_backend/internals/features/members/model"
	"minhaigreja_backend/internals/features/teaching/dto"
	"minhaigreja_backend/internals/features/teaching/model"
	"minhaigreja_backend/internals/features/teaching/service"
	helper "minhaigreja_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

/* ================= Shared lookups ================= */

// memberRefsByID busca as referências leves {id,name,avatar} em lote.
func memberRefsByID(db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]memberdto.MemberRef, error) {
	out := make(map[uuid.UUID]memberdto.MemberRef, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []membermodel.MemberModel
	if err := db.
		Select("member_id, member_name, member_avatar_url").
		Where("member_id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].MemberID] = memberdto.NewMemberRef(&rows[i])
	}
	return out, nil
}

// resolveTaxonomyFields resolve stage/category crus (id-ou-nome) para FKs.
func (ctl *ClassController) resolveTaxonomyFields(churchID uuid.UUID, stage, category *string) (stageID, categoryID *uuid.UUID, err error) {
	if stage != nil && strings.TrimSpace(*stage) != "" {
		id, rerr := service.ResolveStageID(ctl.DB, churchID, *stage)
		if rerr != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Estágio de crescimento desconhecido: "+*stage)
		}
		stageID = &id
	}
	if category != nil && strings.TrimSpace(*category) != "" {
		id, rerr := service.ResolveCategoryID(ctl.DB, churchID, *category)
		if rerr != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Categoria de ensino desconhecida: "+*category)
		}
		categoryID = &id
	}
	return stageID, categoryID, nil
}

/* ================= View-model composition ================= */

type classNames struct {
	stages     map[uuid.UUID]string
	categories map[uuid.UUID]string
}

func (ctl *ClassController) taxonomyNames(churchID uuid.UUID) (*classNames, error) {
	n := &classNames{
		stages:     map[uuid.UUID]string{},
		categories: map[uuid.UUID]string{},
	}
	var stages []model.ChristianStageModel
	if err := ctl.DB.Where("stage_church_id = ?", churchID).Find(&stages).Error; err != nil {
		return nil, err
	}
	for _, s := range stages {
		n.stages[s.StageID] = s.StageName
	}
	var cats []model.TeachingCategoryModel
	if err := ctl.DB.Where("category_church_id = ?", churchID).Find(&cats).Error; err != nil {
		return nil, err
	}
	for _, c := range cats {
		n.categories[c.CategoryID] = c.CategoryName
	}
	return n, nil
}

func (ctl *ClassController) buildListItem(m *model.TeachingClassModel, names *classNames, teachers map[uuid.UUID]memberdto.MemberRef, studentCount, lessonCount int) dto.ClassListItem {
	item := dto.ClassListItem{
		ClassID:        m.ClassID,
		ClassName:      m.ClassName,
		ClassWeekday:   m.ClassWeekday,
		ClassTime:      m.ClassTime,
		ClassRoom:      m.ClassRoom,
		ClassStartDate: m.ClassStartDate,
		ClassEndDate:   m.ClassEndDate,
		ClassStatus:    m.ClassStatus,
		StudentCount:   studentCount,
		LessonCount:    lessonCount,
	}
	// relações opcionais ausentes viram nil, nunca erro
	if m.ClassTeacherID != nil {
		if ref, ok := teachers[*m.ClassTeacherID]; ok {
			item.Teacher = &ref
		}
	}
	if m.ClassStageID != nil {
		if name, ok := names.stages[*m.ClassStageID]; ok {
			item.StageName = &name
		}
	}
	if m.ClassCategoryID != nil {
		if name, ok := names.categories[*m.ClassCategoryID]; ok {
			item.CategoryName = &name
		}
	}
	return item
}

/* ================= Handlers ================= */

// GET /admin/teaching/classes: ordenadas por data de início desc
func (ctl *ClassController) ListClasses(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ParsePaging(c, "start_date", "desc", helper.DefaultOpts)

	q := ctl.DB.Model(&model.TeachingClassModel{}).
		Where("class_church_id = ?", churchID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("class_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("class_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("[teaching] count church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar turmas")
	}

	var rows []model.TeachingClassModel
	if err := q.Order("class_start_date DESC NULLS LAST, class_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[teaching] list church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar turmas")
	}
	if len(rows) == 0 {
		return helper.JsonList(c, "", []dto.ClassListItem{}, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
	}

	classIDs := make([]uuid.UUID, 0, len(rows))
	teacherIDs := make([]uuid.UUID, 0, len(rows))
	for _, m := range rows {
		classIDs = append(classIDs, m.ClassID)
		if m.ClassTeacherID != nil {
			teacherIDs = append(teacherIDs, *m.ClassTeacherID)
		}
	}

	names, err := ctl.taxonomyNames(churchID)
	if err != nil {
		log.Printf("[teaching] taxonomies church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar taxonomias")
	}
	teachers, err := memberRefsByID(ctl.DB, teacherIDs)
	if err != nil {
		log.Printf("[teaching] teachers church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar professores")
	}

	// contagens por turma em lote
	type countRow struct {
		ID    uuid.UUID `gorm:"column:id"`
		Total int       `gorm:"column:total"`
	}
	studentCounts := map[uuid.UUID]int{}
	var scRows []countRow
	if err := ctl.DB.Table("teaching_class_students").
		Select("class_student_class_id AS id, COUNT(*) AS total").
		Where("class_student_class_id IN ?", classIDs).
		Group("class_student_class_id").
		Scan(&scRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar alunos")
	}
	for _, r := range scRows {
		studentCounts[r.ID] = r.Total
	}
	lessonCounts := map[uuid.UUID]int{}
	var lcRows []countRow
	if err := ctl.DB.Table("teaching_lessons").
		Select("lesson_class_id AS id, COUNT(*) AS total").
		Where("lesson_class_id IN ?", classIDs).
		Group("lesson_class_id").
		Scan(&lcRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao contar aulas")
	}
	for _, r := range lcRows {
		lessonCounts[r.ID] = r.Total
	}

	out := make([]dto.ClassListItem, 0, len(rows))
	for i := range rows {
		m := &rows[i]
		out = append(out, ctl.buildListItem(m, names, teachers, studentCounts[m.ClassID], lessonCounts[m.ClassID]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /admin/teaching/classes/:id: view-model completo
func (ctl *ClassController) GetClassByID(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var m model.TeachingClassModel
	if err := ctl.DB.
		Where("class_id = ? AND class_church_id = ?", id, churchID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		log.Printf("[teaching] get church=%s id=%s err=%v", churchID, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar turma")
	}

	// alunos matriculados
	var enrollments []model.TeachingClassStudentModel
	if err := ctl.DB.Where("class_student_class_id = ?", id).Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar alunos")
	}

	// aulas, mais recentes primeiro
	var lessons []model.TeachingLessonModel
	if err := ctl.DB.Where("lesson_class_id = ?", id).
		Order("lesson_date DESC").
		Find(&lessons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar aulas")
	}

	// presenças de todas as aulas em lote
	lessonIDs := make([]uuid.UUID, 0, len(lessons))
	for _, l := range lessons {
		lessonIDs = append(lessonIDs, l.LessonID)
	}
	var attendance []model.TeachingLessonAttendanceModel
	if len(lessonIDs) > 0 {
		if err := ctl.DB.Where("attendance_lesson_id IN ?", lessonIDs).Find(&attendance).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar presenças")
		}
	}

	// refs de membros (professor + alunos + presentes) em uma busca só
	refIDs := make([]uuid.UUID, 0, len(enrollments)+len(attendance)+1)
	if m.ClassTeacherID != nil {
		refIDs = append(refIDs, *m.ClassTeacherID)
	}
	for _, e := range enrollments {
		refIDs = append(refIDs, e.ClassStudentMemberID)
	}
	for _, a := range attendance {
		refIDs = append(refIDs, a.AttendanceMemberID)
	}
	refs, err := memberRefsByID(ctl.DB, refIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar membros")
	}

	names, err := ctl.taxonomyNames(churchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar taxonomias")
	}

	students := make([]memberdto.MemberRef, 0, len(enrollments))
	for _, e := range enrollments {
		if ref, ok := refs[e.ClassStudentMemberID]; ok {
			students = append(students, ref)
		}
	}

	byLesson := map[uuid.UUID][]memberdto.MemberRef{}
	for _, a := range attendance {
		if ref, ok := refs[a.AttendanceMemberID]; ok {
			byLesson[a.AttendanceLessonID] = append(byLesson[a.AttendanceLessonID], ref)
		}
	}
	lessonOut := make([]dto.LessonResponse, 0, len(lessons))
	for i := range lessons {
		lessonOut = append(lessonOut, dto.NewLessonResponse(&lessons[i], byLesson[lessons[i].LessonID]))
	}

	detail := dto.ClassDetailResponse{
		ClassListItem:  ctl.buildListItem(&m, names, refs, len(students), len(lessons)),
		Students:       students,
		Lessons:        lessonOut,
		AttendanceRate: service.ClassAttendanceRate(len(attendance), len(lessons), len(students)),
	}
	return helper.JsonOK(c, "", detail)
}

// POST /admin/teaching/classes
func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	stageID, categoryID, err := ctl.resolveTaxonomyFields(churchID, req.Stage, req.Category)
	if err != nil {
		return err
	}

	m := req.ToModel(churchID, stageID, categoryID)
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Printf("[teaching] create church=%s err=%v", churchID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar turma")
	}
	return helper.JsonCreated(c, "Turma criada", m)
}

// PUT /admin/teaching/classes/:id
func (ctl *ClassController) UpdateClass(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.TeachingClassModel
	if err := ctl.DB.
		Where("class_id = ? AND class_church_id = ?", id, churchID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar turma")
	}

	stageID, categoryID, err := ctl.resolveTaxonomyFields(churchID, req.Stage, req.Category)
	if err != nil {
		return err
	}

	req.ApplyToModel(&m, stageID, categoryID)
	if err := ctl.DB.Save(&m).Error; err != nil {
		log.Printf("[teaching] update church=%s id=%s err=%v", churchID, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar turma")
	}
	return helper.JsonUpdated(c, "Turma atualizada", m)
}

// DELETE /admin/teaching/classes/:id
// Cascata explícita: presenças -> aulas -> matrículas -> turma, em uma transação.
func (ctl *ClassController) DeleteClass(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var m model.TeachingClassModel
		if err := tx.Where("class_id = ? AND class_church_id = ?", id, churchID).First(&m).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			DELETE FROM teaching_lesson_attendance
			 WHERE attendance_lesson_id IN (
			       SELECT lesson_id FROM teaching_lessons WHERE lesson_class_id = ?)`, id).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_class_id = ?", id).Delete(&model.TeachingLessonModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_student_class_id = ?", id).Delete(&model.TeachingClassStudentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		log.Printf("[teaching] delete church=%s id=%s err=%v", churchID, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover turma")
	}
	return helper.JsonDeleted(c, "Turma removida", fiber.Map{"class_id": id})
}

// PUT /admin/teaching/classes/:id/students: substitui a lista de matrículas
func (ctl *ClassController) SetClassStudents(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.SetClassStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var m model.TeachingClassModel
		if err := tx.Where("class_id = ? AND class_church_id = ?", id, churchID).First(&m).Error; err != nil {
			return err
		}
		if err := tx.Where("class_student_class_id = ?", id).Delete(&model.TeachingClassStudentModel{}).Error; err != nil {
			return err
		}
		if len(req.StudentIDs) == 0 {
			return nil
		}
		rows := make([]model.TeachingClassStudentModel, 0, len(req.StudentIDs))
		for _, sid := range req.StudentIDs {
			rows = append(rows, model.TeachingClassStudentModel{
				ClassStudentClassID:  id,
				ClassStudentMemberID: sid,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		log.Printf("[teaching] set students church=%s id=%s err=%v", churchID, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar alunos")
	}
	return helper.JsonUpdated(c, "Alunos atualizados", fiber.Map{"class_id": id, "student_count": len(req.StudentIDs)})
}
