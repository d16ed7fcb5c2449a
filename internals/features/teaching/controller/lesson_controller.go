package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	memberdto "minhaigreja_backend/internals/features/members/dto"
	"minhaigreja_backend/internals/features/teaching/dto"
	"minhaigreja_backend/internals/features/teaching/model"
	helper "minhaigreja_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

func (ctl *LessonController) classOfChurch(tx *gorm.DB, classID, churchID uuid.UUID) error {
	var m model.TeachingClassModel
	return tx.Select("class_id").
		Where("class_id = ? AND class_church_id = ?", classID, churchID).
		First(&m).Error
}

/* ================= Handlers ================= */

// GET /admin/teaching/classes/:classId/lessons
func (ctl *LessonController) ListLessons(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := ctl.classOfChurch(ctl.DB, classID, churchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar turma")
	}

	var lessons []model.TeachingLessonModel
	if err := ctl.DB.Where("lesson_class_id = ?", classID).
		Order("lesson_date DESC").
		Find(&lessons).Error; err != nil {
		log.Printf("[teaching] lessons class=%s err=%v", classID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao listar aulas")
	}

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
	attendeeIDs := make([]uuid.UUID, 0, len(attendance))
	for _, a := range attendance {
		attendeeIDs = append(attendeeIDs, a.AttendanceMemberID)
	}
	refs, err := memberRefsByID(ctl.DB, attendeeIDs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar membros")
	}

	byLesson := map[uuid.UUID][]memberdto.MemberRef{}
	for _, a := range attendance {
		if ref, ok := refs[a.AttendanceMemberID]; ok {
			byLesson[a.AttendanceLessonID] = append(byLesson[a.AttendanceLessonID], ref)
		}
	}
	out := make([]dto.LessonResponse, 0, len(lessons))
	for i := range lessons {
		out = append(out, dto.NewLessonResponse(&lessons[i], byLesson[lessons[i].LessonID]))
	}
	return helper.JsonOK(c, "", out)
}

// POST /admin/teaching/classes/:classId/lessons
// Upsert de aula + substituição total das presenças em uma única transação
// (equivalente do procedimento manage_teaching_lesson_v2 do storage original).
func (ctl *LessonController) UpsertLessonWithAttendance(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpsertLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var lesson model.TeachingLessonModel
	created := false
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctl.classOfChurch(tx, classID, churchID); err != nil {
			return err
		}

		if req.LessonID != nil {
			if err := tx.Where("lesson_id = ? AND lesson_class_id = ?", *req.LessonID, classID).
				First(&lesson).Error; err != nil {
				return err
			}
			lesson.LessonDate = req.LessonDate
			lesson.LessonTitle = req.LessonTitle
			lesson.LessonNotes = req.LessonNotes
			if err := tx.Save(&lesson).Error; err != nil {
				return err
			}
		} else {
			created = true
			lesson = model.TeachingLessonModel{
				LessonClassID: classID,
				LessonDate:    req.LessonDate,
				LessonTitle:   req.LessonTitle,
				LessonNotes:   req.LessonNotes,
			}
			if err := tx.Create(&lesson).Error; err != nil {
				return err
			}
		}

		// substituição total: apaga tudo e insere o conjunto novo
		if err := tx.Where("attendance_lesson_id = ?", lesson.LessonID).
			Delete(&model.TeachingLessonAttendanceModel{}).Error; err != nil {
			return err
		}
		if len(req.AttendeeIDs) == 0 {
			return nil
		}
		rows := make([]model.TeachingLessonAttendanceModel, 0, len(req.AttendeeIDs))
		for _, mid := range req.AttendeeIDs {
			rows = append(rows, model.TeachingLessonAttendanceModel{
				AttendanceLessonID: lesson.LessonID,
				AttendanceMemberID: mid,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turma ou aula não encontrada")
		}
		log.Printf("[teaching] upsert lesson class=%s err=%v", classID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao salvar aula")
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
	resp := dto.NewLessonResponse(&lesson, attendees)
	if created {
		return helper.JsonCreated(c, "Aula registrada", resp)
	}
	return helper.JsonUpdated(c, "Aula atualizada", resp)
}

// DELETE /admin/teaching/classes/:classId/lessons/:id
// Cascata explícita: presenças antes da aula, em uma transação.
func (ctl *LessonController) DeleteLesson(c *fiber.Ctx) error {
	churchID, err := helper.GetChurchIDFromToken(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctl.classOfChurch(tx, classID, churchID); err != nil {
			return err
		}
		var lesson model.TeachingLessonModel
		if err := tx.Where("lesson_id = ? AND lesson_class_id = ?", id, classID).First(&lesson).Error; err != nil {
			return err
		}
		if err := tx.Where("attendance_lesson_id = ?", id).
			Delete(&model.TeachingLessonAttendanceModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&lesson).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aula não encontrada")
		}
		log.Printf("[teaching] delete lesson class=%s id=%s err=%v", classID, id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao remover aula")
	}
	return helper.JsonDeleted(c, "Aula removida", fiber.Map{"lesson_id": id})
}
