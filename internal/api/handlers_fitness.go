package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-health/wellspring/internal/advisor"
	"github.com/wellspring-health/wellspring/internal/services"
)

func (handler *Handler) CreateFitnessProfile(c *fiber.Ctx) error {
	var input fitnessProfileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user := currentUser(c)
	profile, err := handler.fitnessService.CreateProfile(user.ID, fitnessProfileInputToService(input))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create fitness profile")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"profile_id": profile.ID,
		"message":    "Fitness profile created",
	})
}

func (handler *Handler) UpdateFitnessProfile(c *fiber.Ctx) error {
	profileID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile id")
	}

	var input fitnessProfileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user := currentUser(c)
	profile, err := handler.fitnessService.UpdateProfile(user.ID, uint(profileID), fitnessProfileInputToService(input))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return apiError(c, fiber.StatusNotFound, "fitness profile not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update fitness profile")
	}

	return c.JSON(fiber.Map{
		"profile_id": profile.ID,
		"message":    "Fitness profile updated",
	})
}

func (handler *Handler) ListFitnessProfiles(c *fiber.Ctx) error {
	user := currentUser(c)
	profiles, err := handler.fitnessService.ListProfiles(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load fitness profiles")
	}
	return c.JSON(fiber.Map{"profiles": profiles})
}

func (handler *Handler) FitnessRecommendations(c *fiber.Ctx) error {
	var input fitnessRecommendationsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.ProfileID == 0 {
		return apiError(c, fiber.StatusBadRequest, "missing profile_id")
	}

	user := currentUser(c)
	dietPlan, routine, result, err := handler.fitnessService.Recommend(c.Context(), user.ID, input.ProfileID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			return apiError(c, fiber.StatusNotFound, "fitness profile not found")
		case errors.Is(err, advisor.ErrUnavailable):
			return apiError(c, fiber.StatusServiceUnavailable, "recommendation service unavailable")
		default:
			return apiError(c, fiber.StatusBadGateway, "recommendation failed")
		}
	}

	return c.JSON(fiber.Map{
		"diet_plan_id":        dietPlan.ID,
		"exercise_routine_id": routine.ID,
		"diet_plan":           result.DietPlan,
		"exercise_plan":       result.ExercisePlan,
	})
}

func fitnessProfileInputToService(input fitnessProfileInput) services.FitnessProfileInput {
	return services.FitnessProfileInput{
		Age:                 input.Age,
		Gender:              input.Gender,
		Height:              input.Height,
		Weight:              input.Weight,
		ActivityLevel:       input.ActivityLevel,
		FitnessGoals:        input.FitnessGoals,
		MedicalConditions:   input.MedicalConditions,
		DietaryRestrictions: input.DietaryRestrictions,
	}
}
