package profile

import (
	"fmt"
	"time"

	"github.com/jcallahan/wellnest/internal/cli"
	"github.com/jcallahan/wellnest/internal/models"
	"github.com/jcallahan/wellnest/internal/utils"
)

type ProfileCmd struct {
	Show    ProfileShowCmd    `cmd:"" help:"Show the health profile and derived metrics." default:"1"`
	Set     ProfileSetCmd     `cmd:"" help:"Update health profile fields."`
	Log     ProfileLogCmd     `cmd:"" help:"Record daily health metrics."`
	History ProfileHistoryCmd `cmd:"" help:"Show recent daily health logs."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Store.GetHealthProfile()
	if err != nil {
		return err
	}

	fmt.Printf("Health profile (%d%% complete)\n\n", p.CompletionPercentage())

	if p.FullName != "" {
		fmt.Printf("Name: %s\n", p.FullName)
	}
	if p.Age > 0 {
		fmt.Printf("Age: %d\n", p.Age)
	}
	if p.Gender != "" {
		fmt.Printf("Gender: %s\n", p.Gender)
	}
	if p.BloodGroup != "" {
		fmt.Printf("Blood group: %s\n", p.BloodGroup)
	}

	if bmi := p.BMI(); bmi > 0 {
		fmt.Printf("\nBMI: %.1f (%s)\n", bmi, p.BMICategory())
	}
	if p.BloodPressureSystolic > 0 && p.BloodPressureDiastolic > 0 {
		fmt.Printf("Blood pressure: %d/%d (%s)\n", p.BloodPressureSystolic, p.BloodPressureDiastolic, p.BloodPressureCategory())
	}
	if p.BloodSugar > 0 {
		fmt.Printf("Blood sugar: %.0f mg/dL (%s)\n", p.BloodSugar, p.BloodSugarStatus())
	}
	if p.HeartRate > 0 {
		fmt.Printf("Heart rate: %d bpm (%s)\n", p.HeartRate, p.HeartRateStatus())
	}

	fmt.Printf("\nDaily water goal: %.1f L", p.DailyWaterGoal())
	if p.WaterIntakeL > 0 {
		fmt.Printf(" (%d%% reached today)", p.WaterIntakePercentage())
	}
	fmt.Println()

	if p.DailySteps > 0 {
		fmt.Printf("Steps today: %d (~%d kcal burned)\n", p.DailySteps, p.EstimatedCaloriesBurned())
	}

	if !p.LastUpdated.IsZero() {
		fmt.Printf("\nLast updated: %s\n", p.LastUpdated.Format("Jan 02, 2006 15:04"))
	}
	return nil
}

type ProfileSetCmd struct {
	Name              string  `help:"Full name." default:""`
	Age               int     `help:"Age in years." default:"0"`
	Gender            string  `help:"Gender." default:""`
	BloodGroup        string  `help:"Blood group (e.g. O+)." default:""`
	Height            float64 `help:"Height in cm." default:"0"`
	Weight            float64 `help:"Weight in kg." default:"0"`
	TargetWeight      float64 `help:"Target weight in kg." default:"0"`
	Systolic          int     `help:"Blood pressure systolic (mmHg)." default:"0"`
	Diastolic         int     `help:"Blood pressure diastolic (mmHg)." default:"0"`
	BloodSugar        float64 `help:"Fasting blood sugar (mg/dL)." default:"0"`
	HeartRate         int     `help:"Resting heart rate (bpm)." default:"0"`
	Temperature       float64 `help:"Body temperature (°C)." default:"0"`
	Steps             int     `help:"Steps today." default:"0"`
	Water             float64 `help:"Water intake today (liters)." default:"0"`
	Sleep             float64 `help:"Sleep last night (hours)." default:"0"`
	Exercise          int     `help:"Exercise today (minutes)." default:"0"`
	Allergies         string  `help:"Known allergies." default:""`
	Medications       string  `help:"Current medications." default:""`
	MedicalConditions string  `help:"Medical conditions." default:""`
	EmergencyContact  string  `help:"Emergency contact name." default:""`
	EmergencyPhone    string  `help:"Emergency contact phone." default:""`
}

func (c *ProfileSetCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Store.GetHealthProfile()
	if err != nil {
		return err
	}

	// Only provided fields are changed
	if c.Name != "" {
		p.FullName = c.Name
	}
	if c.Age > 0 {
		p.Age = c.Age
	}
	if c.Gender != "" {
		p.Gender = c.Gender
	}
	if c.BloodGroup != "" {
		p.BloodGroup = c.BloodGroup
	}
	if c.Height > 0 {
		p.HeightCm = c.Height
	}
	if c.Weight > 0 {
		p.WeightKg = c.Weight
	}
	if c.TargetWeight > 0 {
		p.TargetWeightKg = c.TargetWeight
	}
	if c.Systolic > 0 {
		p.BloodPressureSystolic = c.Systolic
	}
	if c.Diastolic > 0 {
		p.BloodPressureDiastolic = c.Diastolic
	}
	if c.BloodSugar > 0 {
		p.BloodSugar = c.BloodSugar
	}
	if c.HeartRate > 0 {
		p.HeartRate = c.HeartRate
	}
	if c.Temperature > 0 {
		p.BodyTemperature = c.Temperature
	}
	if c.Steps > 0 {
		p.DailySteps = c.Steps
	}
	if c.Water > 0 {
		p.WaterIntakeL = c.Water
	}
	if c.Sleep > 0 {
		p.SleepHours = c.Sleep
	}
	if c.Exercise > 0 {
		p.ExerciseMinutes = c.Exercise
	}
	if c.Allergies != "" {
		p.Allergies = c.Allergies
	}
	if c.Medications != "" {
		p.Medications = c.Medications
	}
	if c.MedicalConditions != "" {
		p.MedicalConditions = c.MedicalConditions
	}
	if c.EmergencyContact != "" {
		p.EmergencyContact = c.EmergencyContact
	}
	if c.EmergencyPhone != "" {
		p.EmergencyPhone = c.EmergencyPhone
	}

	p.LastUpdated = time.Now()

	if err := ctx.Store.SaveHealthProfile(p); err != nil {
		return err
	}

	fmt.Printf("Profile updated (%d%% complete).\n", p.CompletionPercentage())
	return nil
}

type ProfileLogCmd struct {
	Date      string  `help:"Day in YYYY-MM-DD format (default: today)." default:""`
	Weight    float64 `help:"Weight in kg." default:"0"`
	Systolic  int     `help:"Blood pressure systolic (mmHg)." default:"0"`
	Diastolic int     `help:"Blood pressure diastolic (mmHg)." default:"0"`
	Sugar     float64 `help:"Fasting blood sugar (mg/dL)." default:"0"`
	HeartRate int     `help:"Resting heart rate (bpm)." default:"0"`
	Steps     int     `help:"Steps." default:"0"`
	Water     float64 `help:"Water intake (liters)." default:"0"`
	Sleep     float64 `help:"Sleep (hours)." default:"0"`
	Exercise  int     `help:"Exercise (minutes)." default:"0"`
	Notes     string  `help:"Free-text notes." default:""`
}

func (c *ProfileLogCmd) Run(ctx *cli.Context) error {
	day := c.Date
	if day == "" {
		day = utils.Today()
	} else if !utils.ValidDay(day) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}

	log, err := ctx.Store.GetHealthLog(day)
	if err != nil {
		log = models.NewDailyHealthLog(day)
	}

	if c.Weight > 0 {
		log.WeightKg = c.Weight
	}
	if c.Systolic > 0 {
		log.BloodPressureSystolic = c.Systolic
	}
	if c.Diastolic > 0 {
		log.BloodPressureDiastolic = c.Diastolic
	}
	if c.Sugar > 0 {
		log.BloodSugar = c.Sugar
	}
	if c.HeartRate > 0 {
		log.HeartRate = c.HeartRate
	}
	if c.Steps > 0 {
		log.DailySteps = c.Steps
	}
	if c.Water > 0 {
		log.WaterIntakeL = c.Water
	}
	if c.Sleep > 0 {
		log.SleepHours = c.Sleep
	}
	if c.Exercise > 0 {
		log.ExerciseMinutes = c.Exercise
	}
	if c.Notes != "" {
		log.Notes = c.Notes
	}

	if err := ctx.Store.SaveHealthLog(log); err != nil {
		return err
	}

	fmt.Printf("Logged health metrics for %s.\n", day)
	return nil
}

type ProfileHistoryCmd struct {
	Days int `help:"Number of days to show." default:"7"`
}

func (c *ProfileHistoryCmd) Run(ctx *cli.Context) error {
	end := time.Now()
	start := end.AddDate(0, 0, -(c.Days - 1))

	logs, err := ctx.Store.GetHealthLogs(utils.DayString(start), utils.DayString(end))
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Printf("No health logs in the last %d days.\n", c.Days)
		return nil
	}

	for _, log := range logs {
		fmt.Printf("%s:", log.Day)
		if log.WeightKg > 0 {
			fmt.Printf(" weight %.1fkg", log.WeightKg)
		}
		if log.BloodPressureSystolic > 0 && log.BloodPressureDiastolic > 0 {
			fmt.Printf(" bp %d/%d", log.BloodPressureSystolic, log.BloodPressureDiastolic)
		}
		if log.BloodSugar > 0 {
			fmt.Printf(" sugar %.0f", log.BloodSugar)
		}
		if log.HeartRate > 0 {
			fmt.Printf(" hr %d", log.HeartRate)
		}
		if log.DailySteps > 0 {
			fmt.Printf(" steps %d", log.DailySteps)
		}
		if log.WaterIntakeL > 0 {
			fmt.Printf(" water %.1fL", log.WaterIntakeL)
		}
		if log.SleepHours > 0 {
			fmt.Printf(" sleep %.1fh", log.SleepHours)
		}
		if log.ExerciseMinutes > 0 {
			fmt.Printf(" exercise %dm", log.ExerciseMinutes)
		}
		if log.Notes != "" {
			fmt.Printf(" (%s)", log.Notes)
		}
		fmt.Println()
	}

	return nil
}
