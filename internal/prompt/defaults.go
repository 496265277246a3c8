package prompt

// 内置模板。产品面向英文资讯场景，模板均为英文。

const fullSummarySystemPrompt = "You are an assistant news reporter for question-answering tasks. " +
	"All of the context provided comes from the content provided below " +
	"so each response should be based on what is provided. " +
	"Context comprises list of documents which have " +
	"UUID, TYPE (episode, email or article), TITLE and CONTENT. " +
	"\n\n" +
	"Context:"

const fullSummaryUserPrompt = "As a professional summarizer, create a brief " +
	"summary of the provided text below, while adhering to these " +
	"guidelines:\n" +
	"- First provide one short engaging sentence on the overall " +
	"content. Use news narration style. Make this an intro for " +
	"one liners below. Refer to this content as OVERALL_SUMMARY\n" +
	"- Second, look across all of the documents. Determine if there are " +
	"any common stories, that is, " +
	"the same story in more than one document, " +
	"and if so, pick the main two or three and create summaries " +
	"with only 2-5 words in each, highlighting the main topic discussed. " +
	"Refer to this content as TRENDING_STORIES.\n" +
	"- Next, provide a list of one liner summaries for each provided " +
	"document.\n" +
	"- Each one liner summary should have text, uuid and type.\n" +
	"- Your response should use the essential information, " +
	"eliminating extraneous language and focusing on critical aspects.\n" +
	"- Rely strictly on the provided text, without including " +
	"external information.\n" +
	"Provide your answer in the following JSON format " +
	"(make sure the answer is JSON serializable):\n" +
	"{\n" +
	"\"summary\": \"OVERALL_SUMMARY\",\n" +
	"\"trending_stories\": [{\"text\": \"TRENDING_STORY_TEXT\"}," +
	" {\"text\": \"TRENDING_STORY_TEXT\"}],\n" +
	"\"one_liners\": [{\"text\": \"ONE_LINER_TEXT\", " +
	"\"uuid\": UUID, \"type\": TYPE}," +
	" {\"text\": \"ONE_LINER_TEXT\", \"uuid\": UUID, \"type\": TYPE}]\n" +
	"}"

const retryFullSummaryPrompt = "The answer you have provided is not JSON serializable.\n" +
	"Provide your answer in the following JSON format " +
	"(make sure the answer is JSON serializable):\n" +
	"{\n" +
	"\"summary\": \"OVERALL_SUMMARY\",\n" +
	"\"trending_stories\": [{\"text\": \"TRENDING_STORY_TEXT\"}," +
	" {\"text\": \"TRENDING_STORY_TEXT\"}],\n" +
	"\"one_liners\": [{\"text\": \"ONE_LINER_TEXT\", " +
	"\"uuid\": UUID, \"type\": TYPE}," +
	" {\"text\": \"ONE_LINER_TEXT\", \"uuid\": UUID, \"type\": TYPE}]\n" +
	"}"

const narrativeOnlyPrompt = "As a professional summarizer, create a brief summary" +
	" of the provided text below, while adhering " +
	"to these guidelines:\n" +
	"- First provide summary in one engaging sentence. " +
	"Provide only the answer. Don't explain what the answer is. " +
	"Refer to this content as OVERALL_SUMMARY.\n" +
	"- Second, look across all of the documents. Determine if there are " +
	"any common stories, that is, " +
	"the same story in more than one document, " +
	"and if so, pick the main two or three and create summaries " +
	"with only 2-5 words in each, highlighting the main topic discussed. " +
	"Refer to this content as TRENDING_STORIES.\n" +
	"- Use news narration style.\n" +
	"- Your response should use the essential information, " +
	"eliminating extraneous language and focusing on " +
	"critical aspects.\n" +
	"- Rely strictly on the provided text, " +
	"without including external information.\n" +
	"Provide your answer in the following JSON format " +
	"(make sure the answer is JSON serializable):\n" +
	"{\n" +
	"\"summary\": \"OVERALL_SUMMARY\",\n" +
	"\"trending_stories\": [{\"text\": \"TRENDING_STORY_TEXT\"}," +
	" {\"text\": \"TRENDING_STORY_TEXT\"}]\n" +
	"}"

const perItemSystemPrompt = "You are an assistant for question-answering tasks. " +
	"All of the context provided comes from the content provided" +
	" below so each response should be based on what is provided.\n\n" +
	"Context:"

const shortPodcastSummaryPrompt = "As a professional summarizer, create a brief summary" +
	" of the provided text below, while adhering " +
	"to these guidelines:\n" +
	"- Provide summary in 4-5 bullets.\n" +
	"- Your response should use the essential information, " +
	"eliminating extraneous language and focusing on " +
	"critical aspects.\n" +
	"- Rely strictly on the provided text, " +
	"without including external information."

const shortGenericSummaryPrompt = "As a professional summarizer, create a brief summary " +
	"of the provided text below, while adhering to these guidelines:\n" +
	"- Provide summary in 4-5 bullets\n" +
	"- Your response should use the essential information, " +
	"eliminating extraneous language and focusing on critical aspects.\n" +
	"- Rely strictly on the provided text, without " +
	"including external information."

const oneLinerSummaryPrompt = "As a professional summarizer, create a brief summary" +
	" of the provided text below, while adhering " +
	"to these guidelines:\n" +
	"- Provide summary in one engaging sentence.\n" +
	"- Provide only the answer. Don't explain what the answer is.\n" +
	"- Use news narration style.\n" +
	"- Your response should use the essential information, " +
	"eliminating extraneous language and focusing on " +
	"critical aspects.\n" +
	"- Rely strictly on the provided text, " +
	"without including external information."
