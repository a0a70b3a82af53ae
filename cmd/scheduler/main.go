package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"personal-scheduler/internal/config"
	"personal-scheduler/internal/logging"
	"personal-scheduler/internal/model"
	"personal-scheduler/internal/store"
	"personal-scheduler/internal/timeparse"
)

type shell struct {
	store *store.Store
	in    *bufio.Reader
	days  int
}

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.Environment)
	defer logger.Sync()

	sh := &shell{
		store: store.New(cfg.DataFile, logger),
		in:    bufio.NewReader(os.Stdin),
		days:  cfg.UpcomingDays,
	}

	fmt.Println("=== Personal Scheduling App ===")
	fmt.Println("Commands: add, remove, today, date, upcoming, help, quit")

	for {
		switch cmd := strings.ToLower(sh.prompt("\nEnter command: ")); cmd {
		case "quit", "q":
			fmt.Println("Goodbye!")
			return
		case "add":
			sh.add()
		case "remove":
			sh.remove()
		case "today":
			sh.day(time.Now())
		case "date":
			sh.date()
		case "upcoming":
			sh.upcoming()
		case "help":
			sh.help()
		case "":
		default:
			fmt.Println("Unknown command. Type 'help' for available commands.")
		}
	}
}

func (sh *shell) prompt(label string) string {
	fmt.Print(label)
	line, err := sh.in.ReadString('\n')
	if err != nil {
		// stdin closed, nothing left to do
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}

func (sh *shell) add() {
	fmt.Println("\n--- Add New Appointment ---")
	title := sh.prompt("Title: ")
	if title == "" {
		fmt.Println("Title cannot be empty")
		return
	}

	dateStr := sh.prompt("Date (YYYY-MM-DD): ")
	start, err := timeparse.DateTime(dateStr, sh.prompt("Start time (HH:MM): "))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	end, err := timeparse.DateTime(dateStr, sh.prompt("End time (HH:MM): "))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	description := sh.prompt("Description (optional): ")
	location := sh.prompt("Location (optional): ")

	apt := model.New(title, description, location, start, end)
	conflicts, err := sh.store.Add(apt)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(conflicts) > 0 {
		fmt.Println("\nWarning: This appointment conflicts with:")
		for _, c := range conflicts {
			fmt.Println("  -", c)
		}
		if strings.ToLower(sh.prompt("\nDo you want to add it anyway? (y/n): ")) != "y" {
			return
		}
		if err := sh.store.Insert(apt); err != nil {
			fmt.Println("Error:", err)
			return
		}
	}
	fmt.Printf("Appointment '%s' added successfully!\n", title)
}

func (sh *shell) remove() {
	fmt.Println("\n--- Remove Appointment ---")
	sh.printUpcoming(30) // wide window so ids are visible
	prefix := sh.prompt("\nEnter appointment ID (first 8 characters): ")

	id, ok := sh.store.ResolveID(prefix)
	if !ok {
		fmt.Println("Appointment not found")
		return
	}
	apt, ok := sh.store.Remove(id)
	if !ok {
		fmt.Println("Appointment not found")
		return
	}
	fmt.Println("Removed appointment:", apt.Title)
}

func (sh *shell) date() {
	d, err := timeparse.Date(sh.prompt("Enter date (YYYY-MM-DD): "))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	sh.day(d)
}

func (sh *shell) day(date time.Time) {
	apts := sh.store.AppointmentsOn(date)
	sort.Slice(apts, func(i, j int) bool {
		return apts[i].StartTime.Before(apts[j].StartTime)
	})

	fmt.Printf("\n=== Schedule for %s ===\n", date.Format("2006-01-02 (Monday)"))
	if len(apts) == 0 {
		fmt.Println("No appointments scheduled")
		return
	}
	for _, a := range apts {
		printEntry(a)
		fmt.Println()
	}
}

func (sh *shell) upcoming() {
	days := sh.days
	if raw := sh.prompt(fmt.Sprintf("Number of days to look ahead (default %d): ", sh.days)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			fmt.Println("Invalid number of days")
			return
		}
		days = n
	}
	sh.printUpcoming(days)
}

func (sh *shell) printUpcoming(days int) {
	apts := sh.store.Upcoming(days)

	fmt.Printf("\n=== Upcoming Appointments (Next %d days) ===\n", days)
	if len(apts) == 0 {
		fmt.Println("No upcoming appointments")
		return
	}

	// group by start day
	var current string
	for _, a := range apts {
		day := a.StartTime.Format("2006-01-02 (Monday)")
		if day != current {
			current = day
			fmt.Printf("\n--- %s ---\n", day)
		}
		printEntry(a)
	}
}

func (sh *shell) help() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  add      - Add a new appointment")
	fmt.Println("  remove   - Remove an appointment")
	fmt.Println("  today    - Show today's schedule")
	fmt.Println("  date     - Show schedule for specific date")
	fmt.Println("  upcoming - Show upcoming appointments")
	fmt.Println("  help     - Show this help message")
	fmt.Println("  quit     - Exit the application")
}

func printEntry(a model.Appointment) {
	fmt.Printf("[%s] %s\n", shortID(a.ID), a)
	if a.Description != "" {
		fmt.Println("    Description:", a.Description)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
