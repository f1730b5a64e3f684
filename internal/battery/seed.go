package battery

// scenarioPrompts are the 30 money situations each question is built from.
// Prompt order matters: the dimension of scenario i is
// AllDimensions()[i mod 4], so inserting or reordering entries changes
// every downstream score.
var scenarioPrompts = [30]string{
	"An unexpected bonus lands in your account",
	"Your rent is going up next month",
	"A friend invites you into an investment opportunity",
	"You are choosing a new bank account",
	"Your monthly subscriptions have quietly added up",
	"A big purchase you have wanted goes on sale",
	"You receive your first paycheck at a new job",
	"An emergency repair bill arrives",
	"You are planning a holiday on a budget",
	"A colleague brings up their retirement fund",
	"Your savings account interest rate drops",
	"You are offered a side project for extra income",
	"The price of groceries keeps climbing",
	"You inherit a modest sum from a relative",
	"Your phone dies and needs replacing",
	"A new budgeting app promises to change your life",
	"You are deciding how much to give to charity",
	"Your car insurance renewal looks expensive",
	"A market dip dominates the news headlines",
	"You are saving for a home deposit",
	"A store card offers instant discounts at checkout",
	"Your energy bill doubles over winter",
	"You get a small tax refund",
	"A friend repays an old loan out of the blue",
	"You are weighing two job offers with different salaries",
	"Your favourite hobby is getting expensive",
	"A family member asks to borrow money",
	"You spot an error in your bank statement",
	"Your team wins a cash prize to split",
	"You are setting money goals for the new year",
}

// optionTexts are the four canonical answers, bound by position to
// Vision, Goal, Logic, and Action respectively. The binding is global,
// not per-question.
var optionTexts = [4]string{
	"Picture what this could make possible down the road",
	"Set a concrete target and work back from it",
	"Run the numbers and compare before deciding",
	"Start right away and adjust as you go",
}

func init() {
	b, err := buildBank(scenarioPrompts[:], optionTexts[:])
	if err != nil {
		panic("battery: invalid seed: " + err.Error())
	}
	bank = b
}
