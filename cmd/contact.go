package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pnaconstructions/pnasite/internal/contact"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Contact form utilities",
}

var contactSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send one contact message through EmailJS",
	Long:  `Submits a message exactly as the website form does. Useful to check the EmailJS ids in the config.`,
	RunE:  runContactSend,
}

func init() {
	contactSendCmd.Flags().String("name", "", "sender name")
	contactSendCmd.Flags().String("email", "", "sender email")
	contactSendCmd.Flags().String("phone", "", "sender phone")
	contactSendCmd.Flags().String("message", "", "message body")
	contactSendCmd.MarkFlagRequired("email")
	contactSendCmd.MarkFlagRequired("message")
	contactCmd.AddCommand(contactSendCmd)
	rootCmd.AddCommand(contactCmd)
}

func runContactSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.MailConfigured() {
		return fmt.Errorf("mail.service_id, mail.template_id and mail.public_key must be set")
	}

	form := contact.NewForm()
	form.SetVerbose(verbose)
	for _, name := range []string{"name", "email", "phone", "message"} {
		v, _ := cmd.Flags().GetString(name)
		form.Set(name, v)
	}

	err = form.Submit(context.Background(), newRelay(cfg))
	fmt.Println(form.Status().Message)
	return err
}
